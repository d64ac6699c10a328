// file: internals/features/tasks/service/score.go
package service

import (
	"sort"
	"time"

	"decofilm_backend/internals/constants"
	model "decofilm_backend/internals/features/tasks/model"
)

var priorityWeights = map[string]int{
	constants.PriorityLow:    10,
	constants.PriorityMedium: 20,
	constants.PriorityHigh:   30,
	constants.PriorityUrgent: 40,
}

// Score ranks a task for the todo list: base weight from priority, plus a
// proximity boost as the due date nears. Overdue open tasks sort above
// everything with the same priority.
func Score(t *model.Task, now time.Time) int {
	score := priorityWeights[t.TaskPriority]

	if t.TaskDueDate != nil && !t.TaskDone {
		days := int(t.TaskDueDate.Sub(now).Hours() / 24)
		switch {
		case days < 0:
			score += 50 // overdue
		case days == 0:
			score += 25
		case days <= 3:
			score += 15
		case days <= 7:
			score += 5
		}
	}
	return score
}

// SortByScore orders tasks highest score first; done tasks always sink to the
// bottom. Ties break on created time so the order is stable across requests.
func SortByScore(tasks []model.Task, now time.Time) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].TaskDone != tasks[j].TaskDone {
			return !tasks[i].TaskDone
		}
		si, sj := Score(&tasks[i], now), Score(&tasks[j], now)
		if si != sj {
			return si > sj
		}
		return tasks[i].TaskCreatedAt.Before(tasks[j].TaskCreatedAt)
	})
}
