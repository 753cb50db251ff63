package app

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/AddressBook/internal/handler"
	"github.com/GoArmGo/AddressBook/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter собирает все маршруты сервиса.
// Пути сохранены один в один с исходным контрактом, включая исторические
// странности: префикс /addresss и PUT /users/{address_id}, обновляющий адрес.
func NewRouter(
	requestTimeout time.Duration,
	userHandler *handler.UserHandler,
	addressHandler *handler.AddressHandler,
	authUseCase usecase.AuthUseCase,
	logger *slog.Logger,
) chi.Router {
	r := chi.NewRouter()
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	// CORS без ограничений — осознанная часть контракта
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	authRequired := handler.Authenticator(authUseCase, logger)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/users", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/users/{user_id}", userHandler.GetUserDetail)

		// адресный маршрут под users-префиксом — исторический контракт,
		// без аутентификации и без проверки владельца
		r.Put("/users/{address_id}", addressHandler.Update)

		r.Get("/addresss/all", addressHandler.ListAll)
		r.Get("/addresss/{address_id}", addressHandler.GetDetail)
		r.Get("/addresss/{x}/{y}", addressHandler.GetByCoordinates)

		r.Group(func(r chi.Router) {
			r.Use(authRequired)
			r.Get("/users/current-user", userHandler.CurrentUser)
			r.Post("/addresss", addressHandler.Create)
			r.Get("/addresss/user", addressHandler.ListByUser)
			r.Delete("/addresss/{address_id}", addressHandler.Delete)
		})
	})

	return r
}
