package tests

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/models"
	serr "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/utils"
)

// contactsRouter подключает хендлеры с параметром {id} так же, как основной роутер
func contactsRouter(h *api.Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/api/contacts", h.ListContacts)
	r.Post("/api/contacts", h.CreateContact)
	r.Put("/api/contacts/{id}", h.UpdateContact)
	r.Delete("/api/contacts/{id}", h.DeleteContact)
	return r
}

func TestHandler_ListContacts_Empty(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	userID := uuid.New()
	deps.contacts.EXPECT().ListByUser(gomock.Any(), userID).Return([]models.Contact{}, nil)

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/contacts", nil), userID))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandler_ListContacts_Shape(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	userID, id := uuid.New(), uuid.New()
	date := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	deps.contacts.EXPECT().ListByUser(gomock.Any(), userID).Return([]models.Contact{{
		ID: id, UserID: userID, Name: "Bob", Email: "bob@x.com", Phone: "555", Type: "personal", CreatedAt: date,
	}}, nil)

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/contacts", nil), userID))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{
		"id":"`+id.String()+`","user":"`+userID.String()+`",
		"name":"Bob","email":"bob@x.com","phone":"555","type":"personal",
		"date":"2024-03-01T12:00:00Z"
	}]`, rec.Body.String())
}

func TestHandler_ListContacts_StoreError(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	userID := uuid.New()
	deps.contacts.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, serr.ErrInternal)

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodGet, "/api/contacts", nil), userID))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandler_CreateContact_MissingName(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t, testConfig())

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(jsonRequest(http.MethodPost, "/api/contacts", `{"email":"bob@x.com"}`), uuid.New()))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"errors":[{"msg":"Name is Required","param":"name","location":"body"}]}`, rec.Body.String())
}

// имя из одних пробелов проходит тег required, но отбивается сервисом
func TestHandler_CreateContact_BlankName(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t, testConfig())

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(jsonRequest(http.MethodPost, "/api/contacts", `{"name":"   "}`), uuid.New()))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"errors":[{"msg":"Name is Required","param":"name","location":"body"}]}`, rec.Body.String())
}

func TestHandler_CreateContact_OK(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	userID := uuid.New()

	deps.contacts.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.Contact) (models.Contact, error) {
			require.Equal(t, userID, c.UserID)
			c.ID = uuid.New()
			c.CreatedAt = time.Now()
			return c, nil
		})

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(jsonRequest(http.MethodPost, "/api/contacts", `{"name":"Bob"}`), userID))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"type":"personal"`)
	require.Contains(t, rec.Body.String(), `"user":"`+userID.String()+`"`)
}

func TestHandler_UpdateContact_BadID(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t, testConfig())

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(jsonRequest(http.MethodPut, "/api/contacts/not-a-uuid", `{"phone":"1"}`), uuid.New()))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"msg":"No such Contact Present"}`, rec.Body.String())
}

func TestHandler_UpdateContact_NotFound(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	id := uuid.New()
	deps.contacts.EXPECT().GetByID(gomock.Any(), id).Return(models.Contact{}, serr.ErrNotFound)

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(jsonRequest(http.MethodPut, "/api/contacts/"+id.String(), `{"phone":"1"}`), uuid.New()))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

// чужой контакт: 403 и Update в репозиторий не уходит
func TestHandler_UpdateContact_Forbidden(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	id := uuid.New()
	deps.contacts.EXPECT().GetByID(gomock.Any(), id).Return(models.Contact{ID: id, UserID: uuid.New()}, nil)

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(jsonRequest(http.MethodPut, "/api/contacts/"+id.String(), `{"name":"Mallory"}`), uuid.New()))

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.JSONEq(t, `{"msg":"Not Authorized"}`, rec.Body.String())
}

func TestHandler_UpdateContact_OK(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	userID, id := uuid.New(), uuid.New()
	existing := models.Contact{ID: id, UserID: userID, Name: "Bob", Type: "personal"}
	patch := models.ContactPatch{Phone: utils.Ptr("555-1234")}

	gomock.InOrder(
		deps.contacts.EXPECT().GetByID(gomock.Any(), id).Return(existing, nil),
		deps.contacts.EXPECT().Update(gomock.Any(), id, patch).Return(patch.Apply(existing), nil),
	)

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(jsonRequest(http.MethodPut, "/api/contacts/"+id.String(), `{"phone":"555-1234","name":""}`), userID))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"Bob"`)
	require.Contains(t, rec.Body.String(), `"phone":"555-1234"`)
}

func TestHandler_UpdateContact_BadJSON(t *testing.T) {
	t.Parallel()

	h, _ := NewTestHandler(t, testConfig())

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(jsonRequest(http.MethodPut, "/api/contacts/"+uuid.NewString(), `{"phone":`), uuid.New()))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_DeleteContact(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	userID, id := uuid.New(), uuid.New()

	gomock.InOrder(
		deps.contacts.EXPECT().GetByID(gomock.Any(), id).Return(models.Contact{ID: id, UserID: userID}, nil),
		deps.contacts.EXPECT().Delete(gomock.Any(), id).Return(nil),
	)

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodDelete, "/api/contacts/"+id.String(), nil), userID))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"msg":"Contact Deleted Successfully"}`, rec.Body.String())
}

func TestHandler_DeleteContact_Forbidden(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())
	id := uuid.New()
	deps.contacts.EXPECT().GetByID(gomock.Any(), id).Return(models.Contact{ID: id, UserID: uuid.New()}, nil)

	rec := httptest.NewRecorder()
	contactsRouter(h).ServeHTTP(rec, asUser(httptest.NewRequest(http.MethodDelete, "/api/contacts/"+id.String(), nil), uuid.New()))

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	h, deps := NewTestHandler(t, testConfig())

	deps.health.EXPECT().Ping(gomock.Any()).Return(nil)
	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	deps.health.EXPECT().Ping(gomock.Any()).Return(serr.ErrInternal)
	rec = httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
