package store

import (
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/models"
)

const (
	createStudent = `INSERT INTO students (id, email, name, password_hash)
    VALUES ($1, $2, $3, $4)
    RETURNING created_at, updated_at;`

	findStudentByEmail = `SELECT id, email, name, password_hash, created_at, updated_at
    FROM students
    WHERE lower(email) = lower($1);`

	findStudentByID = `SELECT id, email, name, password_hash, created_at, updated_at
    FROM students
    WHERE id = $1;`

	createSubject = `INSERT INTO subjects (id, student_id, name, description)
    VALUES ($1, $2, $3, $4)
    RETURNING created_at, updated_at;`

	updateSubject = `UPDATE subjects
    SET name = $1, description = $2, updated_at = now()
    WHERE id = $3 AND student_id = $4
    RETURNING created_at, updated_at;`

	deleteSubject = `DELETE FROM subjects
    WHERE id = $1 AND student_id = $2;`

	getSubjectByID = `SELECT s.id, s.student_id, s.name, s.description, s.created_at, s.updated_at, count(t.id)
    FROM subjects s
    LEFT JOIN tasks t ON t.subject_id = s.id
    WHERE s.id = $1 AND s.student_id = $2
    GROUP BY s.id;`

	getSubjectsByStudent = `SELECT s.id, s.student_id, s.name, s.description, s.created_at, s.updated_at, count(t.id)
    FROM subjects s
    LEFT JOIN tasks t ON t.subject_id = s.id
    WHERE s.student_id = $1
    GROUP BY s.id
    ORDER BY lower(s.name) ASC, s.id ASC;`

	subjectExists = `SELECT EXISTS (
        SELECT 1 FROM subjects WHERE id = $1 AND student_id = $2
    );`

	subjectHasTasks = `SELECT EXISTS (
        SELECT 1 FROM tasks WHERE subject_id = $1
    );`

	createTask = `INSERT INTO tasks (id, student_id, subject_id, title, description, deadline)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING created_at, updated_at;`

	updateTask = `UPDATE tasks
    SET title = $1, description = $2, deadline = $3, is_done = $4, subject_id = $5, updated_at = now()
    WHERE id = $6 AND student_id = $7
    RETURNING created_at, updated_at;`

	deleteTask = `DELETE FROM tasks
    WHERE id = $1 AND student_id = $2;`

	getTaskByID = `SELECT t.id, t.student_id, t.subject_id, t.title, t.description, t.deadline, t.is_done, t.created_at, t.updated_at, COALESCE(s.name, '')
    FROM tasks t
    LEFT JOIN subjects s ON s.id = t.subject_id
    WHERE t.id = $1 AND t.student_id = $2;`

	getAllTasksByStudent = `SELECT t.id, t.student_id, t.subject_id, t.title, t.description, t.deadline, t.is_done, t.created_at, t.updated_at, COALESCE(s.name, '')
    FROM tasks t
    LEFT JOIN subjects s ON s.id = t.subject_id
    WHERE t.student_id = $1
    ORDER BY t.deadline ASC, t.id ASC;`

	markTaskDone = `UPDATE tasks
    SET is_done = TRUE, updated_at = now()
    WHERE id = $1 AND student_id = $2;`

	toggleTaskStatus = `UPDATE tasks
    SET is_done = NOT is_done, updated_at = now()
    WHERE id = $1 AND student_id = $2;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// ($N) placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// taskColumns is the column list shared by every task SELECT so that rows
// can be scanned by one helper regardless of which query produced them.
var taskColumns = []string{
	"t.id",
	"t.student_id",
	"t.subject_id",
	"t.title",
	"t.description",
	"t.deadline",
	"t.is_done",
	"t.created_at",
	"t.updated_at",
	"COALESCE(s.name, '') AS subject_name",
}

// buildTaskSearchQuery translates a [models.TaskSearch] criteria set into a
// single SELECT with deterministic clause ordering:
//
//	owner filter, text term, subject, status, date range, ORDER BY.
//
// The now instant anchors the pending/overdue semantics so that the produced
// SQL is testable independently of the wall clock. Ties on the sort key are
// broken by task ID ascending.
func buildTaskSearchQuery(studentID uuid.UUID, search models.TaskSearch, now time.Time) (string, []any, error) {
	q := psql.
		Select(taskColumns...).
		From("tasks t").
		LeftJoin("subjects s ON s.id = t.subject_id").
		Where(sq.Eq{"t.student_id": studentID})

	if term := strings.TrimSpace(search.Term); term != "" {
		pattern := "%" + term + "%"
		q = q.Where(sq.Or{
			sq.ILike{"t.title": pattern},
			sq.ILike{"t.description": pattern},
		})
	}

	if search.SubjectID != nil {
		q = q.Where(sq.Eq{"t.subject_id": *search.SubjectID})
	}

	switch search.Status {
	case models.StatusCompleted:
		q = q.Where(sq.Eq{"t.is_done": true})
	case models.StatusPending:
		q = q.Where(sq.Eq{"t.is_done": false}).
			Where(sq.GtOrEq{"t.deadline": now})
	case models.StatusOverdue:
		q = q.Where(sq.Eq{"t.is_done": false}).
			Where(sq.Lt{"t.deadline": now})
	}

	if search.From != nil {
		q = q.Where(sq.GtOrEq{"t.deadline": *search.From})
	}
	if search.To != nil {
		// the To bound covers the whole calendar day it names
		q = q.Where(sq.Lt{"t.deadline": search.To.AddDate(0, 0, 1)})
	}

	q = q.OrderBy(taskOrderClause(search.SortBy, search.Order), "t.id ASC")

	query, args, err := q.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// taskOrderClause maps the requested sort to the primary ORDER BY
// expression. Unknown or empty values fall back to deadline ascending.
func taskOrderClause(sortBy models.TaskSortBy, order models.SortOrder) string {
	dir := "ASC"
	if order == models.OrderDesc {
		dir = "DESC"
	}

	col := "t.deadline"
	switch sortBy {
	case models.SortByTitle:
		col = "lower(t.title)"
	case models.SortByCreated:
		col = "t.created_at"
	case models.SortBySubject:
		col = "lower(COALESCE(s.name, ''))"
	}

	return col + " " + dir
}

// buildSubjectNameExistsQuery produces the case-insensitive per-student
// name-uniqueness probe. A non-nil excludeID removes the subject itself from
// consideration, which is what the update path needs.
func buildSubjectNameExistsQuery(studentID uuid.UUID, name string, excludeID *uuid.UUID) (string, []any, error) {
	inner := psql.
		Select("1").
		From("subjects").
		Where(sq.Eq{"student_id": studentID}).
		Where(sq.Expr("lower(name) = lower(?)", name))

	if excludeID != nil {
		inner = inner.Where(sq.NotEq{"id": *excludeID})
	}

	innerSQL, args, err := inner.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return "SELECT EXISTS (" + innerSQL + ")", args, nil
}
