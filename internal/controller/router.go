package controller

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	paysafecard "github.com/sebastianwalker/paysafecard-go"
	"github.com/sebastianwalker/paysafecard-go/internal/config"
)

// RouterDeps bundles everything the demo router needs.
type RouterDeps struct {
	Client     *paysafecard.Client
	Logger     zerolog.Logger
	CORSConfig config.CORSConfig
}

// NewRouter builds the demo shop router.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.CORSConfig.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: deps.CORSConfig.AllowCredentials,
		MaxAge:           300,
	}))

	checkoutH := NewCheckoutController(deps.Client, deps.Logger)

	r.Get("/pay", checkoutH.Pay)
	r.Get("/capture", checkoutH.Capture)
	r.Get("/failure", checkoutH.Failure)
	r.Post("/notify", checkoutH.Notify)

	return r
}
