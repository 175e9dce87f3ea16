package service

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers and the CLI map these with errors.Is; anything
// else coming out of a service is a store error.
var (
	ErrUnauthenticated  = errors.New("unauthenticated")
	ErrNotAuthenticated = fmt.Errorf("%w: not authenticated", ErrUnauthenticated)
	ErrInvalidSession   = fmt.Errorf("%w: invalid session", ErrUnauthenticated)

	ErrNoSuchUser       = errors.New("no such user")
	ErrDuplicateUser    = errors.New("user already exists")
	ErrHashingFailure   = errors.New("password hashing failed")
	ErrNotFound         = errors.New("not found")
	ErrCategoryNotEmpty = errors.New("category is not empty")
	ErrInvalidInput     = errors.New("invalid input")
)
