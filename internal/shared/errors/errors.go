// Package errors содержит общие доменные ошибки приложения.
//
// Эти ошибки используются в service и repository слоях
// и маппятся на HTTP-статусы в api слое.
package errors

import (
	"errors"
	"fmt"
)

var (
	// Входные данные невалидны (пустые поля, неправильный формат и т.п.)
	ErrInvalidInput = errors.New("invalid input")
	// Неверные учётные данные
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Получена непредвиденная ошибка
	ErrInternal = errors.New("internal error")
	// Полученные JSON данные с ошибками
	ErrBadJSON = errors.New("bad json")
	// Ресурс принадлежит другому пользователю
	ErrForbidden = errors.New("forbidden")
	// Ресурс уже существует (например email уже занят)
	ErrAlreadyExists = errors.New("already exists")
	// Ресурс не найден
	ErrNotFound = errors.New("not found")
)

// Уточнения ErrInvalidCredentials для логина.
// errors.Is(ErrInvalidEmail, ErrInvalidCredentials) == true.
var (
	ErrInvalidEmail    = fmt.Errorf("%w: unknown email", ErrInvalidCredentials)
	ErrInvalidPassword = fmt.Errorf("%w: password mismatch", ErrInvalidCredentials)
)

// ErrPasswordTooLong — пароль не помещается в лимит хэшера.
// errors.Is(ErrPasswordTooLong, ErrInvalidInput) == true.
var ErrPasswordTooLong = fmt.Errorf("%w: password too long", ErrInvalidInput)
