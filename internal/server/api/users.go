package api

import (
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// Register регистрирует пользователя и сразу выдаёт токен.
//
// Ответы:
//   - 200 OK: {"token": "..."};
//   - 400 Bad Request: ошибки валидации (в том числе пароль длиннее 72 байт для bcrypt) или email уже занят;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body shared.RegisterRequest true "New user"
// @Success      200 {object} shared.TokenResponse
// @Failure      400 {object} shared.ValidationErrorResponse "Validation errors or user already exists"
// @Failure      500 {string} string "Server Error"
// @Router       /users [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req shared.RegisterRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.Svc.Auth.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrAlreadyExists):
			WriteMsg(w, http.StatusBadRequest, MsgUserExists)
		case errors.Is(err, serr.ErrPasswordTooLong):
			WriteValidation(w, validation.Errors{{Msg: MsgPasswordTooLong, Param: "password", Location: validation.LocationBody}})
		case errors.Is(err, serr.ErrInvalidInput):
			WriteMsg(w, http.StatusBadRequest, serr.ErrInvalidInput.Error())
		default:
			h.Log.Sugar().Errorw("register failed", "error", err)
			WriteServerError(w)
		}
		return
	}

	WriteJSON(w, http.StatusOK, shared.TokenResponse{Token: token})
}
