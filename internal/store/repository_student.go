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

// studentRepository is the PostgreSQL-backed implementation of
// [StudentRepository]. It handles account creation and lookup against the
// "students" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type studentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStudentRepository constructs a [StudentRepository] backed by the
// provided database connection and logger.
func NewStudentRepository(db *DB, logger *logger.Logger) StudentRepository {
	logger.Debug().Msg("creating student repository")
	return &studentRepository{
		db:     db,
		logger: logger,
	}
}

// CreateStudent persists a new account and returns the fully populated
// [models.Student] with server-assigned timestamps.
//
// The identity is generated here (time-ordered UUID) and the INSERT returns
// the database-assigned timestamps, so the caller receives the canonical
// representation of the new account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *studentRepository) CreateStudent(ctx context.Context, student models.Student) (models.Student, error) {
	log := logger.FromContext(ctx)

	student.ID = utils.NewUUID()

	row := r.db.QueryRowContext(ctx, createStudent, student.ID, student.Email, student.Name, student.PasswordHash)

	if err := row.Scan(&student.CreatedAt, &student.UpdatedAt); err != nil {
		log.Err(err).
			Str("func", "*studentRepository.CreateStudent").
			Str("email", student.Email).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error creating student")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Student{}, ErrEmailAlreadyExists
		default:
			return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return student, nil
}

// FindStudentByEmail retrieves the account whose email matches the given one
// case-insensitively.
//
// Error handling:
//   - No matching row → [ErrNoStudentWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *studentRepository) FindStudentByEmail(ctx context.Context, email string) (models.Student, error) {
	log := logger.FromContext(ctx)

	var found models.Student
	row := r.db.QueryRowContext(ctx, findStudentByEmail, email)

	if err := row.Scan(&found.ID, &found.Email, &found.Name, &found.PasswordHash, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrNoStudentWasFound
		}

		log.Err(err).
			Str("func", "*studentRepository.FindStudentByEmail").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error finding student by email")
		return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// FindStudentByID retrieves the account with the given identifier.
//
// Error handling mirrors [FindStudentByEmail].
func (r *studentRepository) FindStudentByID(ctx context.Context, id uuid.UUID) (models.Student, error) {
	log := logger.FromContext(ctx)

	var found models.Student
	row := r.db.QueryRowContext(ctx, findStudentByID, id)

	if err := row.Scan(&found.ID, &found.Email, &found.Name, &found.PasswordHash, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Student{}, ErrNoStudentWasFound
		}

		log.Err(err).
			Str("func", "*studentRepository.FindStudentByID").
			Str("student_id", id.String()).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error finding student by id")
		return models.Student{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
