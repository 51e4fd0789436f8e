// HTTP-хендлеры контактов. Все маршруты защищены токеном.
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/middleware"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/service"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/validation"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// ListContacts возвращает контакты текущего пользователя, новые первыми.
//
// @Summary      Get all user's contacts
// @Tags         contacts
// @Produce      json
// @Security     ApiKeyAuth
// @Success      200 {array}  shared.Contact
// @Failure      401 {object} shared.MessageResponse
// @Failure      500 {string} string "Server Error"
// @Router       /contacts [get]
func (h *Handler) ListContacts(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	list, err := h.Svc.Contacts.List(r.Context(), userID)
	if err != nil {
		h.Log.Sugar().Errorw("list contacts failed", "error", err, "user_id", userID.String())
		WriteServerError(w)
		return
	}

	WriteJSON(w, http.StatusOK, models.PublicContacts(list))
}

// CreateContact создаёт контакт текущего пользователя.
// Повторный запрос с тем же телом создаёт ещё один контакт.
//
// @Summary      Add new contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        request body shared.CreateContactRequest true "Contact"
// @Success      200 {object} shared.Contact
// @Failure      400 {object} shared.ValidationErrorResponse
// @Failure      401 {object} shared.MessageResponse
// @Failure      500 {string} string "Server Error"
// @Router       /contacts [post]
func (h *Handler) CreateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	var req shared.CreateContactRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.Svc.Contacts.Create(r.Context(), userID, service.ContactInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Type:  req.Type,
	})
	if err != nil {
		if errors.Is(err, serr.ErrInvalidInput) {
			WriteValidation(w, validation.Errors{{Msg: MsgNameRequired, Param: "name", Location: validation.LocationBody}})
			return
		}
		h.Log.Sugar().Errorw("create contact failed", "error", err, "user_id", userID.String())
		WriteServerError(w)
		return
	}

	WriteJSON(w, http.StatusOK, c.Public())
}

// UpdateContact обновляет переданные поля контакта.
// Непереданные и пустые поля остаются как были.
//
// @Summary      Update contact
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id      path string true "Contact ID"
// @Param        request body shared.UpdateContactRequest true "Fields to change"
// @Success      200 {object} shared.Contact
// @Failure      400 {object} shared.MessageResponse "Invalid JSON"
// @Failure      401 {object} shared.MessageResponse
// @Failure      403 {object} shared.MessageResponse "Not Authorized"
// @Failure      404 {object} shared.MessageResponse "No such Contact Present"
// @Failure      500 {string} string "Server Error"
// @Router       /contacts/{id} [put]
func (h *Handler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, ok := contactID(w, r)
	if !ok {
		return
	}

	var req shared.UpdateContactRequest
	if !h.decode(w, r, &req) {
		return
	}

	c, err := h.Svc.Contacts.Update(r.Context(), userID, id, models.NewContactPatch(req))
	if err != nil {
		h.writeContactErr(w, err, "update contact failed", userID, id)
		return
	}

	WriteJSON(w, http.StatusOK, c.Public())
}

// DeleteContact удаляет контакт текущего пользователя.
//
// @Summary      Delete contact
// @Tags         contacts
// @Produce      json
// @Security     ApiKeyAuth
// @Param        id path string true "Contact ID"
// @Success      200 {object} shared.MessageResponse
// @Failure      401 {object} shared.MessageResponse
// @Failure      403 {object} shared.MessageResponse "Not Authorized"
// @Failure      404 {object} shared.MessageResponse "No such Contact Present"
// @Failure      500 {string} string "Server Error"
// @Router       /contacts/{id} [delete]
func (h *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.caller(w, r)
	if !ok {
		return
	}

	id, ok := contactID(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Contacts.Delete(r.Context(), userID, id); err != nil {
		h.writeContactErr(w, err, "delete contact failed", userID, id)
		return
	}

	WriteMsg(w, http.StatusOK, MsgContactDeleted)
}

// caller достаёт id пользователя, положенный AuthMiddleware.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		WriteMsg(w, http.StatusUnauthorized, middleware.MsgNoToken)
		return uuid.Nil, false
	}
	return userID, true
}

// contactID разбирает {id} из пути. Неразбираемый id отдаётся как 404.
func contactID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		WriteMsg(w, http.StatusNotFound, MsgContactNotFound)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) writeContactErr(w http.ResponseWriter, err error, logMsg string, userID, id uuid.UUID) {
	switch {
	case errors.Is(err, serr.ErrNotFound):
		WriteMsg(w, http.StatusNotFound, MsgContactNotFound)
	case errors.Is(err, serr.ErrForbidden):
		WriteMsg(w, http.StatusForbidden, MsgNotAuthorized)
	default:
		h.Log.Sugar().Errorw(logMsg,
			"error", err,
			"user_id", userID.String(),
			"contact_id", id.String(),
		)
		WriteServerError(w)
	}
}
