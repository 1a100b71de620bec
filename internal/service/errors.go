package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongCredentials    = errors.New("wrong email or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrDeadlineInPast  = errors.New("deadline cannot be in the past")
	ErrSubjectNotOwned = errors.New("subject does not exist")
	ErrSubjectHasTasks = errors.New("subject has tasks and cannot be deleted")
)
