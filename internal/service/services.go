package service

import (
	"github.com/smart-planner/smart-planner/internal/config"
	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/store"
)

type Services struct {
	AuthService      AuthService
	SubjectService   SubjectService
	TaskService      TaskService
	DashboardService DashboardService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.StudentRepository, cfg.App, logger),
		SubjectService:   NewSubjectService(storages.SubjectRepository, logger),
		TaskService:      NewTaskService(storages.TaskRepository, storages.SubjectRepository, logger),
		DashboardService: NewDashboardService(storages.TaskRepository, logger),
	}
}
