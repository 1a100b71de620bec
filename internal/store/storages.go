package store

import (
	"context"

	"github.com/smart-planner/smart-planner/internal/config"
	"github.com/smart-planner/smart-planner/internal/logger"
)

// Storages aggregates every repository the service layer depends on,
// together with the shared database handle used for lifecycle management
// (ping, close) and migrations.
type Storages struct {
	StudentRepository
	SubjectRepository
	TaskRepository

	DB *DB
}

// NewStorages connects to PostgreSQL and wires all repositories over the
// single shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		StudentRepository: NewStudentRepository(db, log),
		SubjectRepository: NewSubjectRepository(db, log),
		TaskRepository:    NewTaskRepository(db, log),
		DB:                db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
