package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/utils"
	"github.com/smart-planner/smart-planner/models"
)

// subjectRepository is the PostgreSQL-backed implementation of
// [SubjectRepository]. All operations are scoped by the owning student so
// that cross-tenant access is structurally impossible.
type subjectRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSubjectRepository constructs a [SubjectRepository] backed by the
// provided database connection and logger.
func NewSubjectRepository(db *DB, logger *logger.Logger) SubjectRepository {
	logger.Debug().Msg("creating subject repository")
	return &subjectRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSubject persists a new subject and returns it with server-assigned
// timestamps.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSubjectNameTaken]; the
//     service pre-checks name uniqueness, so this is the race fallback.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *subjectRepository) CreateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	subject.ID = utils.NewUUID()

	row := r.db.QueryRowContext(ctx, createSubject, subject.ID, subject.StudentID, subject.Name, subject.Description)

	if err := row.Scan(&subject.CreatedAt, &subject.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "*subjectRepository.CreateSubject").
			Str("student_id", subject.StudentID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error creating subject")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Subject{}, ErrSubjectNameTaken
		default:
			return models.Subject{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return subject, nil
}

// UpdateSubject overwrites the subject's name and description and refreshes
// the update timestamp.
//
// Error handling:
//   - No matching row (missing or foreign subject) → [ErrSubjectNotFound].
//   - unique_violation → [ErrSubjectNameTaken].
func (r *subjectRepository) UpdateSubject(ctx context.Context, subject models.Subject) (models.Subject, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, updateSubject, subject.Name, subject.Description, subject.ID, subject.StudentID)

	if err := row.Scan(&subject.CreatedAt, &subject.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Subject{}, ErrSubjectNotFound
		}

		log.Err(err).
			Str("func", "*subjectRepository.UpdateSubject").
			Str("subject_id", subject.ID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error updating subject")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Subject{}, ErrSubjectNameTaken
		default:
			return models.Subject{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return subject, nil
}

// DeleteSubject removes the subject and reports whether a row was removed.
// The tasks FK is declared ON DELETE SET NULL, so any still-linked tasks are
// detached rather than deleted; the service layer guards against deleting a
// subject that has tasks in the first place.
func (r *subjectRepository) DeleteSubject(ctx context.Context, subjectID, studentID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSubject, subjectID, studentID)
	if err != nil {
		log.Err(err).
			Str("func", "*subjectRepository.DeleteSubject").
			Str("subject_id", subjectID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error deleting subject")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// GetSubjectByID retrieves a single subject with its current task count.
// Missing and foreign subjects are indistinguishable: both yield
// [ErrSubjectNotFound].
func (r *subjectRepository) GetSubjectByID(ctx context.Context, subjectID, studentID uuid.UUID) (models.Subject, error) {
	log := logger.FromContext(ctx)

	var subject models.Subject
	row := r.db.QueryRowContext(ctx, getSubjectByID, subjectID, studentID)

	if err := row.Scan(
		&subject.ID,
		&subject.StudentID,
		&subject.Name,
		&subject.Description,
		&subject.CreatedAt,
		&subject.UpdatedAt,
		&subject.TaskCount,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Subject{}, ErrSubjectNotFound
		}

		log.Err(err).
			Str("func", "*subjectRepository.GetSubjectByID").
			Str("subject_id", subjectID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error getting subject")
		return models.Subject{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return subject, nil
}

// GetSubjectsByStudent returns every subject of the student with task
// counts, ordered by name (case-insensitive) for stable listings.
//
// Returns an empty slice when the student has no subjects.
func (r *subjectRepository) GetSubjectsByStudent(ctx context.Context, studentID uuid.UUID) ([]models.Subject, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getSubjectsByStudent, studentID)
	if err != nil {
		log.Err(err).
			Str("func", "*subjectRepository.GetSubjectsByStudent").
			Str("student_id", studentID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("failed to execute query for getting subjects")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	subjects := make([]models.Subject, 0, 10)

	for rows.Next() {
		var subject models.Subject

		scanErr := rows.Scan(
			&subject.ID,
			&subject.StudentID,
			&subject.Name,
			&subject.Description,
			&subject.CreatedAt,
			&subject.UpdatedAt,
			&subject.TaskCount,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*subjectRepository.GetSubjectsByStudent").
				Str("student_id", studentID.String()).
				Msg("failed to scan subject row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		subjects = append(subjects, subject)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*subjectRepository.GetSubjectsByStudent").
			Str("student_id", studentID.String()).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return subjects, nil
}

// SubjectNameExists probes the per-student case-insensitive name uniqueness
// constraint. A non-nil excludeID skips the subject itself (update path).
func (r *subjectRepository) SubjectNameExists(ctx context.Context, studentID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSubjectNameExistsQuery(studentID, name, excludeID)
	if err != nil {
		log.Err(err).
			Str("func", "*subjectRepository.SubjectNameExists").
			Msg("failed to create query")
		return false, err
	}

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "*subjectRepository.SubjectNameExists").
			Str("student_id", studentID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error checking subject name existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// SubjectExists reports whether the subject exists and is owned by the student.
func (r *subjectRepository) SubjectExists(ctx context.Context, subjectID, studentID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, subjectExists, subjectID, studentID).Scan(&exists); err != nil {
		log.Err(err).
			Str("func", "*subjectRepository.SubjectExists").
			Str("subject_id", subjectID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error checking subject existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

// SubjectHasTasks reports whether at least one task is linked to the subject.
// The ownership check is the caller's responsibility; task links never cross
// students by construction.
func (r *subjectRepository) SubjectHasTasks(ctx context.Context, subjectID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	var has bool
	if err := r.db.QueryRowContext(ctx, subjectHasTasks, subjectID).Scan(&has); err != nil {
		log.Err(err).
			Str("func", "*subjectRepository.SubjectHasTasks").
			Str("subject_id", subjectID.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error checking subject tasks")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return has, nil
}
