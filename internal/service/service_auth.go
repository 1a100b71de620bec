package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/smart-planner/smart-planner/internal/config"
	"github.com/smart-planner/smart-planner/internal/logger"
	"github.com/smart-planner/smart-planner/internal/store"
	"github.com/smart-planner/smart-planner/internal/utils"
	"github.com/smart-planner/smart-planner/internal/validators"
	"github.com/smart-planner/smart-planner/models"
)

// authService is the concrete implementation of AuthService.
// It handles student registration, credential verification, and JWT token
// lifecycle using a StudentRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// studentRepository is the data-access layer used to create and look up
	// students.
	studentRepository store.StudentRepository

	// validator checks registration and login payloads before any
	// persistence call is made.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// StudentRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(studentRepository store.StudentRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		studentRepository: studentRepository,
		validator:         validators.NewStudentValidator(),
		tokenSignKey:      cfg.TokenSignKey,
		tokenIssuer:       cfg.TokenIssuer,
		tokenDuration:     cfg.TokenDuration,
		logger:            logger,
	}
}

// Register creates a new student account.
//
// It validates the payload (well-formed email, non-empty name, password of
// sufficient length matching its confirmation), hashes the password with
// bcrypt, and delegates persistence to the StudentRepository.
//
// Returns the persisted student (with a server-assigned ID) or:
//   - A wrapped ErrInvalidDataProvided if any validation rule fails.
//   - store.ErrEmailAlreadyExists if the email is already registered.
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) (models.Student, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid registration data provided")
		return models.Student{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Student{}, fmt.Errorf("password hashing failed: %w", err)
	}

	student := models.Student{
		Email:        strings.TrimSpace(request.Email),
		Name:         strings.TrimSpace(request.Name),
		PasswordHash: string(passwordHash),
	}

	registeredStudent, err := a.studentRepository.CreateStudent(ctx, student)
	if err != nil {
		log.Err(err).Str("email", student.Email).Msg("student creation ended with error")
		return models.Student{}, fmt.Errorf("student creation ended with error: %w", err)
	}

	return registeredStudent, nil
}

// Login authenticates an existing student.
//
// It validates the payload, looks up the account by email, and compares the
// supplied password against the stored bcrypt hash.
//
// Returns the authenticated student record or:
//   - A wrapped ErrInvalidDataProvided if email or password is missing.
//   - ErrWrongCredentials if the account does not exist or the password does
//     not match. The two cases are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.Student, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("email", request.Email).Msg("invalid login data provided")
		return models.Student{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundStudent, err := a.studentRepository.FindStudentByEmail(ctx, strings.TrimSpace(request.Email))
	if err != nil {
		if errors.Is(err, store.ErrNoStudentWasFound) {
			return models.Student{}, ErrWrongCredentials
		}

		log.Err(err).Str("email", request.Email).Msg("student search by email failed")
		return models.Student{}, fmt.Errorf("student search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundStudent.PasswordHash), []byte(request.Password)); err != nil {
		log.Error().
			Str("student_id", foundStudent.ID.String()).
			Str("email", foundStudent.Email).
			Msg("wrong password")
		return models.Student{}, ErrWrongCredentials
	}

	return foundStudent, nil
}

// CreateToken issues a signed JWT for the given student.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, student models.Student) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, student.ID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
