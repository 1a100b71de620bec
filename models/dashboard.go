package models

// Dashboard summarizes a student's full task set into actionable buckets and
// progress statistics. It is computed from a single snapshot of the
// unfiltered task list, so the buckets are always disjoint.
type Dashboard struct {
	// TodayTasks holds incomplete tasks whose deadline falls on the current
	// calendar day, sorted by deadline ascending.
	TodayTasks []Task `json:"today_tasks"`

	// UpcomingTasks holds incomplete tasks due tomorrow or later, sorted by
	// deadline ascending. Overdue incomplete tasks appear in neither bucket.
	UpcomingTasks []Task `json:"upcoming_tasks"`

	// TotalTasks counts every task of the student, completed ones included.
	TotalTasks int `json:"total_tasks"`

	// CompletedTasks counts the tasks whose completion flag is set.
	CompletedTasks int `json:"completed_tasks"`

	// ProgressPercentage is completed/total*100 rounded to one decimal
	// place, or 0 when the student has no tasks.
	ProgressPercentage float64 `json:"progress_percentage"`

	// HasNoTasks is set when the student has no tasks at all; callers use it
	// to render an empty state.
	HasNoTasks bool `json:"has_no_tasks"`
}
