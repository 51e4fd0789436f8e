// Package http реализует маршрутизацию HTTP-слоя сервера Contact Keeper.
//
// Пакет отвечает за:
//   - регистрацию HTTP-маршрутов и настройку роутера (chi);
//   - логирование выполнения HTTP-запросов;
//   - подключение проверки токена к защищённым маршрутам.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/api"
	"github.com/IvanChernomyrdin/go-contact-keeper/internal/server/middleware"

	_ "github.com/IvanChernomyrdin/go-contact-keeper/swagger/docs"
)

// Options — необязательные части роутера.
type Options struct {
	// Swagger включает /swagger/*.
	Swagger bool
}

// NewRouter создаёт и настраивает HTTP-роутер сервера.
//
// Роутер использует chi.Router и регистрирует:
//   - middleware логирования и восстановления после паники для всех запросов;
//   - публичные POST /api/auth, POST /api/users, GET /api/health;
//   - защищённые токеном GET /api/auth и /api/contacts.
func NewRouter(h *api.Handler, opts Options) http.Handler {
	r := chi.NewRouter()
	// логирование всех запросов
	r.Use(middleware.LoggerMiddleware(h.Log))
	r.Use(chimw.Recoverer)

	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api", func(r chi.Router) {
		// Публичные пути
		r.Post("/auth", h.Login)
		r.Post("/users", h.Register)
		r.Get("/health", h.Health)

		// защищены пути
		r.Group(func(r chi.Router) {
			// проверка токена
			r.Use(h.Verifier.AuthMiddleware())

			r.Get("/auth", h.WhoAmI)
			r.Route("/contacts", func(r chi.Router) {
				r.Get("/", h.ListContacts)
				r.Post("/", h.CreateContact)
				r.Put("/{id}", h.UpdateContact)    // частичное обновление, id в пути
				r.Delete("/{id}", h.DeleteContact) // удаление по id
			})
		})
	})

	return r
}
