package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jmfrancisco/idlink-backend/internal/app/models"
	"github.com/jmfrancisco/idlink-backend/internal/app/repositories"
	"github.com/jmfrancisco/idlink-backend/internal/config"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/apperrors"
	"github.com/jmfrancisco/idlink-backend/internal/pkg/auth"
)

// CreateDefaultData creates the default staff account when seeding is
// enabled and the user table is still empty. Applicant accounts are
// never seeded.
func CreateDefaultData(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	if !cfg.Seed.DefaultStaff {
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	count, err := userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		lgr.Debug().Int64("users", count).Msg("Users already exist, skipping default staff seed")
		return nil
	}

	lgr.Info().Str("idno", cfg.Seed.StaffIDNo).Msg("Seeding default staff account")

	hashed, err := auth.HashPassword(cfg.Seed.StaffPassword)
	if err != nil {
		return err
	}

	staff := &models.User{
		IDNo:     cfg.Seed.StaffIDNo,
		FullName: "IDLink Staff",
		Email:    cfg.Seed.StaffEmail,
		Password: hashed,
		Role:     models.RoleStaff,
	}

	if _, err := userRepo.Create(ctx, staff); err != nil {
		if errors.Is(err, apperrors.ErrDuplicateUser) {
			return nil
		}
		return err
	}

	lgr.Info().Str("email", staff.Email).Msg("Default staff account created")
	return nil
}
