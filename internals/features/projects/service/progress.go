// file: internals/features/projects/service/progress.go
package service

import "decofilm_backend/internals/constants"

// ProgressStep is the fixed increment of one "advance" click.
const ProgressStep = 25

// Advance returns the next progress value: current + 25, clamped to 100.
// Advancing at the ceiling stays at 100.
func Advance(current int) int {
	next := current + ProgressStep
	if next > 100 {
		return 100
	}
	if next < 0 {
		return 0
	}
	return next
}

// StatusFor maps a progress value onto its status band. The bands snap in a
// fixed order: 100 wins over the >=75 band, which wins over >=25.
func StatusFor(progress int) string {
	switch {
	case progress >= 100:
		return constants.ProjectStatusCompleted
	case progress >= 75:
		return constants.ProjectStatusQualityCheck
	case progress >= 25:
		return constants.ProjectStatusInProgress
	default:
		return constants.ProjectStatusScheduled
	}
}
