package services

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrNotFound and ErrInvalidRequest abort the primary write and propagate to
// the caller. Side-effect failures never surface through either.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidRequest = errors.New("invalid request")
)

func notFoundf(format string, args ...any) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func invalidRequestf(format string, args ...any) error {
	return errors.Wrapf(ErrInvalidRequest, format, args...)
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
