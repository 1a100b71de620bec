// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new
	// student fails because an account with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoStudentWasFound is returned when a query expected to match exactly
	// one student record produces an empty result set.
	ErrNoStudentWasFound = errors.New("no student was found")

	// ErrSubjectNameTaken is returned when an insert or update of a subject
	// violates the per-student case-insensitive name uniqueness constraint.
	ErrSubjectNameTaken = errors.New("subject name already exists for this student")

	// ErrSubjectNotFound is returned when a query or update targets a subject
	// that does not exist or is not owned by the given student. The two cases
	// are deliberately indistinguishable.
	ErrSubjectNotFound = errors.New("subject not found")

	// ErrTaskNotFound is returned when a query or update targets a task that
	// does not exist or is not owned by the given student. The two cases are
	// deliberately indistinguishable.
	ErrTaskNotFound = errors.New("task not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
