package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/softcybersec/superd/internal/budget"
	budgetStore "github.com/softcybersec/superd/internal/budget/store"
	"github.com/softcybersec/superd/internal/category"
	categoryStore "github.com/softcybersec/superd/internal/category/store"
	"github.com/softcybersec/superd/internal/config"
	"github.com/softcybersec/superd/internal/database"
	superdHttp "github.com/softcybersec/superd/internal/http"
	authHandler "github.com/softcybersec/superd/internal/http/auth"
	budgetHandler "github.com/softcybersec/superd/internal/http/budget"
	categoryHandler "github.com/softcybersec/superd/internal/http/category"
	"github.com/softcybersec/superd/internal/operation"
	operationStore "github.com/softcybersec/superd/internal/operation/store"
	"github.com/softcybersec/superd/internal/school"
	schoolStore "github.com/softcybersec/superd/internal/school/store"
	"github.com/softcybersec/superd/internal/session"
	"github.com/softcybersec/superd/internal/user"
	userStore "github.com/softcybersec/superd/internal/user/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var sessions session.Store
	if cfg.Cache.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer client.Close()

		sessions = session.NewRedis(client, cfg.Auth.SessionTTL)
	} else {
		slog.Warn("no cache configured, sessions are kept in process memory")

		sessions = session.NewMemory(cfg.Auth.SessionTTL)
	}

	var (
		schoolService    = school.NewService(schoolStore.New(db))
		userService      = user.NewService(userStore.New(db), cfg.Auth.PasswordSalt)
		categoryService  = category.NewService(categoryStore.New(db))
		operationService = operation.NewService(operationStore.New(db))
		budgetService    = budget.NewService(budgetStore.New(db), categoryService, operationService)
	)

	var (
		authH     = authHandler.NewHandler(userService, schoolService, sessions)
		budgetH   = budgetHandler.NewHandler(budgetService, operationService)
		categoryH = categoryHandler.NewHandler(categoryService)
	)

	router := superdHttp.New(authH, budgetH, categoryH, sessions, cfg.App.StaticDir)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
