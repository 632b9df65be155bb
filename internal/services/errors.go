package services

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrAlreadyReviewed    = errors.New("report has already been reviewed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired refresh token")
)

// ValidationError marks input the client can correct; handlers map it to
// a 400 response with the message passed through verbatim.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }
