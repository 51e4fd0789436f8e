// Package api содержит HTTP-клиент CLI для сервера Contact Keeper.
//
// Клиент построен на resty: базовый URL, таймаут и заголовок
// Accept: application/json задаются один раз при создании.
// Токен передаётся в заголовке x-auth-token.
//
// Ошибочные ответы (4xx/5xx) превращаются в *Error с текстом,
// который вернул сервер: msg, список ошибок валидации или тело как есть.
package api

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	shared "github.com/IvanChernomyrdin/go-contact-keeper/internal/shared/models"
)

// HeaderAuthToken — заголовок, в котором сервер ждёт токен.
const HeaderAuthToken = "x-auth-token"

// DefaultTimeout — таймаут одного запроса.
const DefaultTimeout = 10 * time.Second

// Error — ошибочный ответ сервера.
type Error struct {
	Status int
	Msg    string
}

func (e *Error) Error() string {
	return e.Msg
}

// Client — клиент API сервера.
type Client struct {
	rc *resty.Client
}

// Option настраивает Client.
type Option func(*resty.Client)

// WithInsecureTLS отключает проверку сертификата сервера.
// Только для локальной разработки с самоподписанным сертификатом.
func WithInsecureTLS(insecure bool) Option {
	return func(rc *resty.Client) {
		if insecure {
			rc.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
		}
	}
}

// WithTimeout задаёт таймаут запроса.
func WithTimeout(d time.Duration) Option {
	return func(rc *resty.Client) {
		rc.SetTimeout(d)
	}
}

// NewClient создаёт клиент для сервера по адресу baseURL
// (например "http://127.0.0.1:8080"). Завершающий "/" обрезается.
func NewClient(baseURL string, opts ...Option) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(DefaultTimeout).
		SetHeader("Accept", "application/json")
	for _, opt := range opts {
		opt(rc)
	}
	return &Client{rc: rc}
}

// do выполняет запрос и декодирует успешный ответ в result (если не nil).
func (c *Client) do(ctx context.Context, method, path, token string, body, result any, pathParams map[string]string) error {
	req := c.rc.R().SetContext(ctx)
	if token != "" {
		req.SetHeader(HeaderAuthToken, token)
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		return err
	}
	if res.IsError() {
		return apiError(res)
	}
	return nil
}

// apiError достаёт текст ошибки из тела ответа.
func apiError(res *resty.Response) error {
	raw := res.Body()

	var msg shared.MessageResponse
	if err := json.Unmarshal(raw, &msg); err == nil && msg.Msg != "" {
		return &Error{Status: res.StatusCode(), Msg: msg.Msg}
	}

	var verrs shared.ValidationErrorResponse
	if err := json.Unmarshal(raw, &verrs); err == nil && len(verrs.Errors) > 0 {
		parts := make([]string, 0, len(verrs.Errors))
		for _, fe := range verrs.Errors {
			parts = append(parts, fe.Msg)
		}
		return &Error{Status: res.StatusCode(), Msg: strings.Join(parts, "; ")}
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		text = http.StatusText(res.StatusCode())
	}
	return &Error{Status: res.StatusCode(), Msg: text}
}
