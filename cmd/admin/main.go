// Command admin provisions a new school tenant: the school row, its
// first user account and, optionally, a starter set of category items.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/joho/godotenv"

	"github.com/softcybersec/superd/internal/category"
	categoryStore "github.com/softcybersec/superd/internal/category/store"
	"github.com/softcybersec/superd/internal/config"
	"github.com/softcybersec/superd/internal/database"
	"github.com/softcybersec/superd/internal/school"
	schoolStore "github.com/softcybersec/superd/internal/school/store"
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

	var (
		schoolReference string
		schoolName      string
		email           string
		password        string
		firstName       string
		lastName        string
		seedCategories  = true
	)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("School reference").
				Description("Unique external identifier, e.g. the SIRET").
				Value(&schoolReference).
				Validate(required("reference")),
			huh.NewInput().
				Title("School name").
				Value(&schoolName).
				Validate(required("name")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("User email").
				Value(&email).
				Validate(required("email")),
			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(required("password")),
			huh.NewInput().
				Title("First name").
				Value(&firstName),
			huh.NewInput().
				Title("Last name").
				Value(&lastName),
			huh.NewConfirm().
				Title("Create default categories?").
				Value(&seedCategories),
		),
	)

	if err := form.Run(); err != nil {
		slog.Error("aborted", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var (
		schools    = school.NewService(schoolStore.New(db))
		users      = user.NewService(userStore.New(db), cfg.Auth.PasswordSalt)
		categories = category.NewService(categoryStore.New(db))
	)

	sc, err := schools.GetByReference(ctx, schoolReference)
	if err != nil {
		if !errors.Is(err, school.ErrNotFound) {
			slog.Error("looking up school", "error", err)
			os.Exit(1)
		}

		sc, err = schools.Create(ctx, schoolReference, schoolName)
		if err != nil {
			slog.Error("creating school", "error", err)
			os.Exit(1)
		}

		slog.Info("school created", "id", sc.ID, "reference", sc.Reference)
	} else {
		slog.Info("school already exists, adding user to it", "id", sc.ID)
	}

	u, err := users.Create(ctx, email, password, firstName, lastName, sc.ID)
	if err != nil {
		slog.Error("creating user", "error", err)
		os.Exit(1)
	}

	slog.Info("user created", "id", u.ID, "email", u.Email)

	if seedCategories {
		defaults := map[category.Kind][]string{
			category.KindBudgetType: {"fonctionnement", "investissement"},
			category.KindRecipient:  {"général", "maternelle", "primaire"},
			category.KindCreditor:   {"mairie", "coop"},
		}

		for kind, names := range defaults {
			for _, name := range names {
				if _, err := categories.Create(ctx, kind, sc.ID, name); err != nil {
					slog.Error("creating category item", "kind", kind, "name", name, "error", err)
					os.Exit(1)
				}
			}
		}

		slog.Info("default categories created", "school_id", sc.ID)
	}
}

func required(field string) func(string) error {
	return func(value string) error {
		if value == "" {
			return errors.New(field + " is required")
		}

		return nil
	}
}
