package service

import "errors"

var (
	// Verification flow. All of these are user-recoverable: the UI shows a
	// retryable message and nothing else happens.
	ErrTokenNotFound         = errors.New("verification token not found")
	ErrTokenExpired          = errors.New("verification token expired")
	ErrEmailMismatch         = errors.New("verification token does not match email")
	ErrNoPendingRecord       = errors.New("no unverified equipment registration for email")
	ErrNoPendingRegistration = errors.New("no pending equipment registration for email")

	ErrEquipmentNotFound     = errors.New("equipment not found")
	ErrDuplicateSerialNumber = errors.New("equipment with this serial number already registered")

	// Soft refusal from the processing gate, not a failure: the record
	// exists but its owner has not verified the email yet.
	ErrEmailVerificationRequired = errors.New("email verification required before processing")

	ErrStaffNotFound = errors.New("staff not found")
)
