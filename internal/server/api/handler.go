// Package api реализует HTTP-слой сервера Contact Keeper.
//
// Пакет отвечает за:
//   - обработку входящих запросов и формирование ответов (JSON, статусы);
//   - валидацию тел запросов;
//   - маппинг доменных ошибок (service/repository) в HTTP-коды и сообщения.
//
// Маршруты регистрируются в internal/server/net/http.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/logger"
	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// Каждый метод если будет возвращать ответ то будет это делать в JSON
// Вынес Content-Type и JSON для удобства
const (
	JsonContentType string = "application/json"
	ContentType     string = "Content-Type"
)

// DefaultMaxBodyBytes — лимит тела запроса, если не задан в Handler.
const DefaultMaxBodyBytes int64 = 1 << 20

// Тексты ответов, которые ожидают существующие клиенты.
const (
	MsgServerError      = "Server Error"
	MsgInvalidJSON      = "Invalid JSON"
	MsgBodyTooLarge     = "Request body too large"
	MsgInvalidEmail     = "Invalid Email"
	MsgInvalidPassword  = "Invalid Password"
	MsgInvalidCreds     = "Invalid Credentials"
	MsgUserExists       = "User already exists"
	MsgContactNotFound  = "No such Contact Present"
	MsgNotAuthorized    = "Not Authorized"
	MsgContactDeleted   = "Contact Deleted Successfully"
	MsgStoreUnavailable = "Store Unavailable"
	MsgNameRequired     = "Name is Required"
	MsgPasswordTooLong  = "Password must be at most 72 bytes"
)

// Handler агрегирует зависимости HTTP-слоя и предоставляет методы-хендлеры.
//
// Handler содержит:
//   - Svc: сервисный слой (бизнес-логика);
//   - Log: логгер для записи событий и ошибок;
//   - Verifier: middleware проверки токена;
//   - Validator: проверка тел запросов по тегам.
type Handler struct {
	Svc       *service.Services
	Log       *logger.HTTPLogger
	Verifier  *middleware.JWTVerifier
	Validator *validation.Validator

	// MaxBodyBytes — максимальный размер тела запроса.
	MaxBodyBytes int64
}

// NewHandler создаёт экземпляр Handler с переданными зависимостями.
//
// svc — набор сервисов приложения,
// log — логгер,
// verifier — проверка токена для защищённых маршрутов.
func NewHandler(svc *service.Services, log *logger.HTTPLogger, verifier *middleware.JWTVerifier) *Handler {
	return &Handler{
		Svc:          svc,
		Log:          log,
		Verifier:     verifier,
		Validator:    validation.New(),
		MaxBodyBytes: DefaultMaxBodyBytes,
	}
}

// WriteJSON пишет v в ответ со статусом status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set(ContentType, JsonContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteMsg пишет ответ вида {"msg": "..."}.
func WriteMsg(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, shared.MessageResponse{Msg: msg})
}

// WriteServerError пишет ответ 500. Подробности клиенту не отдаются.
func WriteServerError(w http.ResponseWriter) {
	http.Error(w, MsgServerError, http.StatusInternalServerError)
}

// WriteValidation пишет ответ 400 со списком ошибок полей.
func WriteValidation(w http.ResponseWriter, errs validation.Errors) {
	WriteJSON(w, http.StatusBadRequest, shared.ValidationErrorResponse{Errors: errs})
}

// decode читает JSON тело запроса в dst и проверяет его валидатором.
// При ошибке ответ уже записан и возвращается false.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	limit := h.MaxBodyBytes
	if limit <= 0 {
		limit = DefaultMaxBodyBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteMsg(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
			return false
		}
		h.Log.Sugar().Debugw("bad request body", "error", fmt.Errorf("%w: %v", serr.ErrBadJSON, err))
		WriteMsg(w, http.StatusBadRequest, MsgInvalidJSON)
		return false
	}

	if h.Validator == nil {
		return true
	}
	if err := h.Validator.Struct(dst); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			WriteValidation(w, verrs)
			return false
		}
		h.Log.Sugar().Errorw("validation failed", "error", err)
		WriteServerError(w)
		return false
	}
	return true
}
