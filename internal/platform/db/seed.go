package db

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"empdir/internal/domain/auth"
	"empdir/internal/domain/directory"
	"empdir/internal/platform/config"
)

// Seed creates the initial superadmin when none exists. With anonymous
// create disabled by default there is no other way to bootstrap the
// first privileged account.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	store := directory.NewStore(pool)

	count, err := store.CountSuperadmins(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.SeedSuperadminEmail == "" || cfg.SeedSuperadminPassword == "" {
		slog.Warn("no superadmin exists and seed credentials are not configured")
		return nil
	}

	hash, err := auth.HashPassword(cfg.SeedSuperadminPassword)
	if err != nil {
		return err
	}

	_, err = store.Create(ctx, directory.Employee{
		Name:                 "Super Admin",
		Email:                cfg.SeedSuperadminEmail,
		PasswordHash:         hash,
		Role:                 auth.RoleSuperadmin,
		Phone:                "0000000000",
		Photo:                "none",
		Address:              "head office",
		FatherName:           "n/a",
		Experience:           0,
		EmergencyNumber:      "0000000000",
		EmergencyContactName: "n/a",
		EmergencyRelation:    "n/a",
	})
	if errors.Is(err, directory.ErrEmailTaken) {
		return nil
	}
	return err
}
