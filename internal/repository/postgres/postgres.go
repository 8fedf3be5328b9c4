package postgres

import (
	"github.com/pkg/errors"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrPositionNotFound = errors.New("position not found")
)
