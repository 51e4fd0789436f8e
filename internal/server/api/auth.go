// HTTP-хендлеры логина, регистрации и профиля
package api

import (
	"errors"
	"net/http"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/middleware"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// WhoAmI возвращает текущего пользователя без пароля.
//
// Любая ошибка поиска, включая пропавшего после выдачи токена пользователя,
// отдаётся как 500.
//
// @Summary      Get logged in user
// @Tags         auth
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200 {object} shared.User
// @Failure      401 {object} shared.MessageResponse "No token or token is not valid"
// @Failure      500 {string} string "Server Error"
// @Router       /auth [get]
func (h *Handler) WhoAmI(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteMsg(w, http.StatusUnauthorized, middleware.MsgNoToken)
		return
	}

	u, err := h.Svc.Auth.WhoAmI(r.Context(), userID)
	if err != nil {
		h.Log.Sugar().Errorw("whoami failed", "error", err, "user_id", userID.String())
		WriteServerError(w)
		return
	}

	WriteJSON(w, http.StatusOK, u.Public())
}

// Login проверяет email и пароль и выдаёт токен.
//
// Ответы:
//   - 200 OK: {"token": "..."};
//   - 400 Bad Request: ошибки валидации, неизвестный email или неверный пароль;
//   - 500 Internal Server Error: прочие ошибки.
//
// @Summary      Auth user and get token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body shared.LoginRequest true "Credentials"
// @Success      200 {object} shared.TokenResponse
// @Failure      400 {object} shared.MessageResponse "Invalid Email / Invalid Password / validation errors"
// @Failure      500 {string} string "Server Error"
// @Router       /auth [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req shared.LoginRequest
	if !h.decode(w, r, &req) {
		return
	}

	token, err := h.Svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, serr.ErrInvalidEmail):
			WriteMsg(w, http.StatusBadRequest, MsgInvalidEmail)
		case errors.Is(err, serr.ErrInvalidPassword):
			WriteMsg(w, http.StatusBadRequest, MsgInvalidPassword)
		case errors.Is(err, serr.ErrInvalidCredentials), errors.Is(err, serr.ErrInvalidInput):
			WriteMsg(w, http.StatusBadRequest, MsgInvalidCreds)
		default:
			h.Log.Sugar().Errorw("login failed", "error", err)
			WriteServerError(w)
		}
		return
	}

	WriteJSON(w, http.StatusOK, shared.TokenResponse{Token: token})
}
