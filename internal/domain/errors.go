package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionBusy     = errors.New("chat session is awaiting a reply")

	// ErrMessageRejected is wrapped by every admission failure.
	ErrMessageRejected = errors.New("message rejected")
	ErrEmptyMessage    = errors.New("message is empty")
	ErrMessageTooLong  = errors.New("message is too long")

	ErrInvalidInquiry   = errors.New("invalid inquiry")
	ErrUnknownLegalKind = errors.New("unknown legal document")
)
