package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/store"
	"github.com/smart-planner/smart-planner/internal/validators"
	"github.com/smart-planner/smart-planner/models"
)

// subjectService is the concrete implementation of SubjectService. All
// repository calls carry the calling student's ID, so a subject owned by
// another student is reported as missing rather than forbidden.
type subjectService struct {
	subjectRepository store.SubjectRepository
	validator         validators.Validator
	logger            *logger.Logger
}

// NewSubjectService constructs a SubjectService wired to the given
// SubjectRepository.
func NewSubjectService(subjectRepository store.SubjectRepository, logger *logger.Logger) SubjectService {
	return &subjectService{
		subjectRepository: subjectRepository,
		validator:         validators.NewTaskValidator(),
		logger:            logger,
	}
}

// CreateSubject creates a new subject for the student.
//
// Subject names are unique per student, case-insensitively. The name is
// checked up front so the common conflict reads as ErrSubjectNameTaken; the
// unique index backstops concurrent creation.
func (s *subjectService) CreateSubject(ctx context.Context, studentID uuid.UUID, request models.SubjectRequest) (models.Subject, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("student_id", studentID.String()).Msg("invalid subject data provided")
		return models.Subject{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	taken, err := s.subjectRepository.SubjectNameExists(ctx, studentID, request.Name, nil)
	if err != nil {
		return models.Subject{}, fmt.Errorf("subject name check failed: %w", err)
	}
	if taken {
		return models.Subject{}, store.ErrSubjectNameTaken
	}

	createdSubject, err := s.subjectRepository.CreateSubject(ctx, request.Subject(studentID))
	if err != nil {
		log.Err(err).Str("student_id", studentID.String()).Msg("subject creation ended with error")
		return models.Subject{}, fmt.Errorf("subject creation ended with error: %w", err)
	}

	return createdSubject, nil
}

// UpdateSubject renames or re-describes an existing subject. The name
// uniqueness check excludes the subject being updated so saving without a
// rename is not a conflict.
func (s *subjectService) UpdateSubject(ctx context.Context, studentID, subjectID uuid.UUID, request models.SubjectRequest) (models.Subject, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("subject_id", subjectID.String()).Msg("invalid subject data provided")
		return models.Subject{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	taken, err := s.subjectRepository.SubjectNameExists(ctx, studentID, request.Name, &subjectID)
	if err != nil {
		return models.Subject{}, fmt.Errorf("subject name check failed: %w", err)
	}
	if taken {
		return models.Subject{}, store.ErrSubjectNameTaken
	}

	subject := request.Subject(studentID)
	subject.ID = subjectID

	updatedSubject, err := s.subjectRepository.UpdateSubject(ctx, subject)
	if err != nil {
		return models.Subject{}, fmt.Errorf("subject update ended with error: %w", err)
	}

	return updatedSubject, nil
}

// DeleteSubject removes a subject that has no tasks attached.
//
// Returns false with a nil error when the subject does not exist or belongs
// to another student, and ErrSubjectHasTasks when tasks still reference it.
func (s *subjectService) DeleteSubject(ctx context.Context, studentID, subjectID uuid.UUID) (bool, error) {
	log := logger.FromContext(ctx)

	exists, err := s.subjectRepository.SubjectExists(ctx, subjectID, studentID)
	if err != nil {
		return false, fmt.Errorf("subject lookup failed: %w", err)
	}
	if !exists {
		return false, nil
	}

	hasTasks, err := s.subjectRepository.SubjectHasTasks(ctx, subjectID)
	if err != nil {
		return false, fmt.Errorf("subject tasks check failed: %w", err)
	}
	if hasTasks {
		log.Error().Str("subject_id", subjectID.String()).Msg("subject has tasks and cannot be deleted")
		return false, ErrSubjectHasTasks
	}

	deleted, err := s.subjectRepository.DeleteSubject(ctx, subjectID, studentID)
	if err != nil {
		return false, fmt.Errorf("subject deletion ended with error: %w", err)
	}

	return deleted, nil
}

// GetSubject retrieves one subject with its task count.
func (s *subjectService) GetSubject(ctx context.Context, studentID, subjectID uuid.UUID) (models.Subject, error) {
	subject, err := s.subjectRepository.GetSubjectByID(ctx, subjectID, studentID)
	if err != nil {
		return models.Subject{}, fmt.Errorf("subject lookup failed: %w", err)
	}

	return subject, nil
}

// ListSubjects returns all of the student's subjects, name ascending.
func (s *subjectService) ListSubjects(ctx context.Context, studentID uuid.UUID) ([]models.Subject, error) {
	subjects, err := s.subjectRepository.GetSubjectsByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("subject listing failed: %w", err)
	}

	return subjects, nil
}
