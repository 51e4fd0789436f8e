package api

import (
	"context"
	"net/http"

	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

const contactPath = "/api/contacts/{id}"

// ListContacts возвращает контакты пользователя, новые первыми.
func (c *Client) ListContacts(ctx context.Context, token string) ([]shared.Contact, error) {
	var out []shared.Contact
	if err := c.do(ctx, http.MethodGet, "/api/contacts", token, nil, &out, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateContact(ctx context.Context, token string, req shared.CreateContactRequest) (shared.Contact, error) {
	var out shared.Contact
	err := c.do(ctx, http.MethodPost, "/api/contacts", token, req, &out, nil)
	return out, err
}

// UpdateContact меняет только переданные (не nil) поля.
func (c *Client) UpdateContact(ctx context.Context, token, id string, req shared.UpdateContactRequest) (shared.Contact, error) {
	var out shared.Contact
	err := c.do(ctx, http.MethodPut, contactPath, token, req, &out, map[string]string{"id": id})
	return out, err
}

func (c *Client) DeleteContact(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, contactPath, token, nil, nil, map[string]string{"id": id})
}

// Health проверяет доступность сервера и его хранилища.
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/health", "", nil, nil, nil)
}
