package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/models"
)

func newTestStudentRepo(t *testing.T) (*studentRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &studentRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestCreateStudent_Success(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	ctx := context.Background()
	student := models.Student{
		Email:        "ada@example.com",
		Name:         "Ada",
		PasswordHash: "$2a$10$hash",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"created_at", "updated_at"}).
		AddRow(now, now)

	mock.ExpectQuery("INSERT INTO students").
		WithArgs(sqlmock.AnyArg(), student.Email, student.Name, student.PasswordHash).
		WillReturnRows(rows)

	created, err := repo.CreateStudent(ctx, student)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Error("expected generated student ID, got uuid.Nil")
	}
	if !created.CreatedAt.Equal(now) {
		t.Errorf("expected created_at %v, got %v", now, created.CreatedAt)
	}
}

func TestCreateStudent_DuplicateEmail(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO students").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateStudent(context.Background(), models.Student{Email: "ada@example.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateStudent_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO students").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateStudent(context.Background(), models.Student{Email: "ada@example.com"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindStudentByEmail_Success(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	studentID := uuid.New()
	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"id", "email", "name", "password_hash", "created_at", "updated_at"}).
		AddRow(studentID.String(), "ada@example.com", "Ada", "$2a$10$hash", now, now)

	mock.ExpectQuery("SELECT (.+) FROM students").
		WithArgs("ada@example.com").
		WillReturnRows(rows)

	found, err := repo.FindStudentByEmail(context.Background(), "ada@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != studentID {
		t.Errorf("expected ID %s, got %s", studentID, found.ID)
	}
	if found.PasswordHash != "$2a$10$hash" {
		t.Errorf("expected password hash to be loaded, got %q", found.PasswordHash)
	}
}

func TestFindStudentByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM students").
		WithArgs("ghost@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindStudentByEmail(context.Background(), "ghost@example.com")
	if !errors.Is(err, ErrNoStudentWasFound) {
		t.Fatalf("expected ErrNoStudentWasFound, got %v", err)
	}
}

func TestFindStudentByID_NotFound(t *testing.T) {
	repo, mock, db := newTestStudentRepo(t)
	defer db.Close()

	studentID := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM students").
		WithArgs(studentID).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindStudentByID(context.Background(), studentID)
	if !errors.Is(err, ErrNoStudentWasFound) {
		t.Fatalf("expected ErrNoStudentWasFound, got %v", err)
	}
}
