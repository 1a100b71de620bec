package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/store"
	"github.com/smart-planner/smart-planner/models"
)

// dashboardService is the concrete implementation of DashboardService. It
// derives the whole overview from a single snapshot of the student's tasks
// so the buckets and the progress counters never disagree with each other.
type dashboardService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewDashboardService constructs a DashboardService wired to the given
// TaskRepository.
func NewDashboardService(taskRepository store.TaskRepository, logger *logger.Logger) DashboardService {
	return &dashboardService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// BuildDashboard computes the student's daily overview.
//
// Bucket rules, relative to the server's local midnight:
//   - TodayTasks: incomplete tasks whose deadline falls within today.
//   - UpcomingTasks: incomplete tasks due tomorrow or later.
//   - Overdue incomplete tasks appear in neither bucket; they still count
//     toward the totals.
//
// ProgressPercentage is completed/total rounded to one decimal place, 0 when
// the student has no tasks at all.
func (d *dashboardService) BuildDashboard(ctx context.Context, studentID uuid.UUID) (models.Dashboard, error) {
	log := logger.FromContext(ctx)

	tasks, err := d.taskRepository.GetAllTasksByStudent(ctx, studentID)
	if err != nil {
		log.Err(err).Str("student_id", studentID.String()).Msg("dashboard task snapshot failed")
		return models.Dashboard{}, fmt.Errorf("dashboard task snapshot failed: %w", err)
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfTomorrow := startOfToday.AddDate(0, 0, 1)

	dashboard := models.Dashboard{
		TodayTasks:    make([]models.Task, 0),
		UpcomingTasks: make([]models.Task, 0),
		TotalTasks:    len(tasks),
		HasNoTasks:    len(tasks) == 0,
	}

	for _, task := range tasks {
		if task.Done {
			dashboard.CompletedTasks++
			continue
		}

		switch {
		case task.Deadline.Before(startOfToday):
			// overdue: counted, never bucketed
		case task.Deadline.Before(startOfTomorrow):
			dashboard.TodayTasks = append(dashboard.TodayTasks, task)
		default:
			dashboard.UpcomingTasks = append(dashboard.UpcomingTasks, task)
		}
	}

	if dashboard.TotalTasks > 0 {
		ratio := float64(dashboard.CompletedTasks) / float64(dashboard.TotalTasks) * 100
		dashboard.ProgressPercentage = math.Round(ratio*10) / 10
	}

	return dashboard, nil
}

// MarkTaskDone marks a task as completed. The operation is idempotent:
// marking an already-completed task succeeds. Returns false with a nil error
// when the task does not exist or belongs to another student.
func (d *dashboardService) MarkTaskDone(ctx context.Context, studentID, taskID uuid.UUID) (bool, error) {
	marked, err := d.taskRepository.MarkTaskDone(ctx, taskID, studentID)
	if err != nil {
		return false, fmt.Errorf("marking task as done ended with error: %w", err)
	}

	return marked, nil
}
