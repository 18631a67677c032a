package http

import (
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/softcybersec/superd/internal/http/auth"
	"github.com/softcybersec/superd/internal/http/budget"
	"github.com/softcybersec/superd/internal/http/category"
	superdmw "github.com/softcybersec/superd/internal/http/middleware"
	"github.com/softcybersec/superd/internal/session"
)

func New(
	authH *auth.Handler,
	budgetH *budget.Handler,
	categoryH *category.Handler,
	sessions session.Store,
	staticDir string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// The front-end is served from a separate origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", superdmw.TokenHeader},
	}))

	authH.Routes(router)

	router.Group(func(r chi.Router) {
		r.Use(superdmw.Auth(sessions))

		budgetH.Routes(r)
		categoryH.Routes(r)
	})

	if staticDir != "" {
		fs := http.FileServer(http.Dir(staticDir))
		router.Handle("/static/*", http.StripPrefix("/static/", fs))
		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
		})
	}

	return router
}
