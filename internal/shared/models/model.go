// Package models содержит модели HTTP API, общие для сервера и CLI-клиента.
//
// Теги validate/msg используются сервером при валидации тел запросов:
// validate — правила go-playground/validator, msg — сообщение для клиента.
package models

import "time"

// User — пользователь в ответе GET /api/auth. Пароль никогда не отдаётся.
type User struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// Contact — контакт пользователя.
//
// User — id владельца, проставляется сервером из токена.
type Contact struct {
	ID    string    `json:"id"`
	User  string    `json:"user"`
	Name  string    `json:"name"`
	Email string    `json:"email,omitempty"`
	Phone string    `json:"phone,omitempty"`
	Type  string    `json:"type"`
	Date  time.Time `json:"date"`
}

// LoginRequest — тело POST /api/auth.
//
// Длина пароля при логине не проверяется, только наличие.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required" msg:"Password is required"`
}

// RegisterRequest — тело POST /api/users.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"required,notblank,min=8" msg:"Please enter a password with 8 or more characters" msg_notblank:"Password must not be blank"`
}

// TokenResponse — ответ на логин и регистрацию.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateContactRequest — тело POST /api/contacts.
type CreateContactRequest struct {
	Name  string `json:"name" validate:"required" msg:"Name is Required"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
	Type  string `json:"type,omitempty"`
}

// UpdateContactRequest — тело PUT /api/contacts/{id}.
//
// Поля — указатели, чтобы отличать "не передано" от значения.
// Пустые строки сервер тоже считает "не передано".
type UpdateContactRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Type  *string `json:"type,omitempty"`
}

// MessageResponse — короткий ответ вида {"msg": "..."}.
type MessageResponse struct {
	Msg string `json:"msg"`
}

// FieldError — ошибка валидации одного поля.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

// ValidationErrorResponse — ответ 400 при ошибках валидации.
type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// HealthResponse — ответ GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}
