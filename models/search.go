package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus selects which completion/deadline state a task search matches.
type TaskStatus string

const (
	// StatusAll applies no status filter.
	StatusAll TaskStatus = "all"

	// StatusPending matches incomplete tasks whose deadline has not passed yet.
	StatusPending TaskStatus = "pending"

	// StatusCompleted matches tasks whose completion flag is set.
	StatusCompleted TaskStatus = "completed"

	// StatusOverdue matches incomplete tasks whose deadline is strictly in
	// the past.
	StatusOverdue TaskStatus = "overdue"
)

// TaskSortBy selects the primary sort column of a task search.
type TaskSortBy string

const (
	SortByDeadline TaskSortBy = "deadline"
	SortByTitle    TaskSortBy = "title"
	SortByCreated  TaskSortBy = "created"
	SortBySubject  TaskSortBy = "subject"
)

// SortOrder selects the sort direction of a task search.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// TaskSearch is the explicit criteria set consumed by the task query builder.
// The zero value means "all tasks, deadline ascending". All filters are
// optional and combined with AND; the owning student is always supplied
// separately and never part of the criteria.
type TaskSearch struct {
	// Term is matched case-insensitively as a substring against both the
	// task title and description. Empty means no text filter.
	Term string

	// SubjectID restricts the result to tasks linked to the given subject.
	SubjectID *uuid.UUID

	// Status filters by completion/deadline state. Empty behaves as StatusAll.
	Status TaskStatus

	// From and To bound the deadline. From is inclusive; To is inclusive of
	// the entire calendar day it names.
	From *time.Time
	To   *time.Time

	// SortBy and Order control result ordering. Empty values default to
	// deadline ascending. Ties are broken by task ID ascending.
	SortBy TaskSortBy
	Order  SortOrder
}

// Valid reports whether the status value is one of the known filters.
// The empty string is valid and treated as StatusAll.
func (s TaskStatus) Valid() bool {
	switch s {
	case "", StatusAll, StatusPending, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// Valid reports whether the sort column is known.
// The empty string is valid and treated as SortByDeadline.
func (s TaskSortBy) Valid() bool {
	switch s {
	case "", SortByDeadline, SortByTitle, SortByCreated, SortBySubject:
		return true
	}
	return false
}

// Valid reports whether the sort direction is known.
// The empty string is valid and treated as OrderAsc.
func (o SortOrder) Valid() bool {
	switch o {
	case "", OrderAsc, OrderDesc:
		return true
	}
	return false
}
