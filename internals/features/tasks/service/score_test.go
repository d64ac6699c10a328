package service

import (
	"testing"
	"time"

	"decofilm_backend/internals/constants"
	model "decofilm_backend/internals/features/tasks/model"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestScoreOverdueBeatsDistantUrgent(t *testing.T) {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)

	overdue := model.Task{
		TaskPriority: constants.PriorityMedium,
		TaskDueDate:  datePtr(now.AddDate(0, 0, -2)),
	}
	distant := model.Task{
		TaskPriority: constants.PriorityUrgent,
		TaskDueDate:  datePtr(now.AddDate(0, 1, 0)),
	}

	if Score(&overdue, now) <= Score(&distant, now) {
		t.Fatal("overdue medium task must outrank a far-off urgent one")
	}
}

func TestScoreDoneTaskGetsNoProximityBoost(t *testing.T) {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	due := datePtr(now.AddDate(0, 0, -1))

	open := model.Task{TaskPriority: constants.PriorityLow, TaskDueDate: due}
	done := model.Task{TaskPriority: constants.PriorityLow, TaskDueDate: due, TaskDone: true}

	if Score(&done, now) >= Score(&open, now) {
		t.Fatal("a finished task must not keep its overdue boost")
	}
}

func TestSortByScore(t *testing.T) {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	mk := func(title, priority string, due *time.Time, done bool, created time.Time) model.Task {
		return model.Task{
			TaskTitle:     title,
			TaskPriority:  priority,
			TaskDueDate:   due,
			TaskDone:      done,
			TaskCreatedAt: created,
		}
	}

	tasks := []model.Task{
		mk("finished", constants.PriorityUrgent, nil, true, now.AddDate(0, 0, -5)),
		mk("someday", constants.PriorityLow, nil, false, now.AddDate(0, 0, -4)),
		mk("overdue", constants.PriorityMedium, datePtr(now.AddDate(0, 0, -1)), false, now.AddDate(0, 0, -3)),
		mk("urgent", constants.PriorityUrgent, datePtr(now.AddDate(0, 0, 10)), false, now.AddDate(0, 0, -2)),
	}

	SortByScore(tasks, now)

	wantOrder := []string{"overdue", "urgent", "someday", "finished"}
	for i, want := range wantOrder {
		if tasks[i].TaskTitle != want {
			t.Fatalf("position %d = %q, want %q", i, tasks[i].TaskTitle, want)
		}
	}
}

func TestSortByScoreStableTies(t *testing.T) {
	now := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	a := model.Task{TaskTitle: "first", TaskPriority: constants.PriorityHigh, TaskCreatedAt: now.AddDate(0, 0, -2)}
	b := model.Task{TaskTitle: "second", TaskPriority: constants.PriorityHigh, TaskCreatedAt: now.AddDate(0, 0, -1)}

	tasks := []model.Task{b, a}
	SortByScore(tasks, now)

	if tasks[0].TaskTitle != "first" || tasks[1].TaskTitle != "second" {
		t.Fatalf("tie must break on created time: got %q, %q", tasks[0].TaskTitle, tasks[1].TaskTitle)
	}
}
