package validators

import (
	"context"
	"strings"

	"github.com/smart-planner/smart-planner/models"
)

// Field name constants for task payload validation.
const (
	// FieldTitle targets the task title.
	FieldTitle = "title"

	// FieldDeadline targets the task deadline.
	FieldDeadline = "deadline"
)

// taskValidator validates task payloads: create and update requests,
// subject requests, and search criteria.
type taskValidator struct{}

// NewTaskValidator returns a Validator for task-domain request values.
func NewTaskValidator() Validator {
	return &taskValidator{}
}

// Validate checks the given request. With no field names every rule is
// applied; otherwise only the named fields are checked.
func (v *taskValidator) Validate(_ context.Context, value any, fields ...string) error {
	switch request := value.(type) {
	case models.TaskCreateRequest:
		return v.validateTask(request.Title, request.Deadline.IsZero(), fieldSet(fields))
	case models.TaskUpdateRequest:
		return v.validateTask(request.Title, request.Deadline.IsZero(), fieldSet(fields))
	case models.SubjectRequest:
		if strings.TrimSpace(request.Name) == "" {
			return ErrSubjectNameRequired
		}
		return nil
	case models.TaskSearch:
		return v.validateSearch(request)
	default:
		return ErrUnsupportedType
	}
}

func (v *taskValidator) validateTask(title string, deadlineIsZero bool, fields map[string]bool) error {
	if wantField(fields, FieldTitle) {
		if strings.TrimSpace(title) == "" {
			return ErrTitleRequired
		}
	}

	if wantField(fields, FieldDeadline) {
		if deadlineIsZero {
			return ErrDeadlineRequired
		}
	}

	return nil
}

func (v *taskValidator) validateSearch(search models.TaskSearch) error {
	if !search.Status.Valid() {
		return ErrInvalidStatusFilter
	}
	if !search.SortBy.Valid() {
		return ErrInvalidSortField
	}
	if !search.Order.Valid() {
		return ErrInvalidSortOrder
	}
	return nil
}
