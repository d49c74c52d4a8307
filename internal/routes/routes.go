package routes

import (
	"net/http"

	"bankledger/internal/handlers"
	appmw "bankledger/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func New(h *handlers.Handler, jwtSecret string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Post("/auth/login", h.Login)

	r.Route("/api", func(api chi.Router) {
		api.Use(appmw.Authenticated(jwtSecret))

		api.Get("/accounts", h.ListAccounts)
		api.Post("/accounts", h.CreateAccount)
		api.Get("/accounts/search", h.GetAccountByOwnerName)
		api.Get("/accounts/{id}", h.GetAccountByID)
		api.Delete("/accounts/{id}", h.DeleteAccount)

		api.Get("/movements", h.ListMovements)
		api.Get("/movements/sum-by-period", h.SumByPeriod)
		api.Get("/movements/sum-by-account/{accountID}", h.SumByAccount)
		api.Get("/movements/by-account/{accountID}", h.ListMovementsByAccount)
		api.Get("/movements/{id}", h.GetMovementByID)
		api.Post("/movements/transfer", h.Transfer)
		api.Post("/movements/deposit", h.Deposit)
		api.Post("/movements/withdraw", h.Withdraw)
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}
