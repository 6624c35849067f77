package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("не найдено")
	ErrForbidden    = errors.New("доступ запрещен")
	ErrValidation   = errors.New("некорректные данные")
	ErrConflict     = errors.New("уже существует")
	ErrUnauthorized = errors.New("требуется авторизация")
)

// Error carries a user-facing message and one of the sentinel kinds above,
// so callers can match it with errors.Is.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func newError(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return newError(ErrNotFound, format, args...)
}

func forbidden(format string, args ...any) error {
	return newError(ErrForbidden, format, args...)
}

func invalid(format string, args ...any) error {
	return newError(ErrValidation, format, args...)
}

func conflict(format string, args ...any) error {
	return newError(ErrConflict, format, args...)
}

func unauthorized(format string, args ...any) error {
	return newError(ErrUnauthorized, format, args...)
}
