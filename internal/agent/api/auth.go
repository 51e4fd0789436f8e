// Методы клиента для регистрации, логина и профиля
package api

import (
	"context"
	"net/http"

	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// Register регистрирует пользователя (POST /api/users) и возвращает токен.
func (c *Client) Register(ctx context.Context, name, email, password string) (string, error) {
	var resp shared.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/users", "",
		shared.RegisterRequest{Name: name, Email: email, Password: password}, &resp, nil)
	return resp.Token, err
}

// Login выполняет вход (POST /api/auth) и возвращает токен.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp shared.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/auth", "",
		shared.LoginRequest{Email: email, Password: password}, &resp, nil)
	return resp.Token, err
}

// Me возвращает пользователя, которому принадлежит token (GET /api/auth).
func (c *Client) Me(ctx context.Context, token string) (shared.User, error) {
	var u shared.User
	err := c.do(ctx, http.MethodGet, "/api/auth", token, nil, &u, nil)
	return u, err
}
