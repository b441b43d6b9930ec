package directory

import "errors"

var (
	ErrNotFound           = errors.New("employee not found")
	ErrEmailTaken         = errors.New("employee with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
