package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/christopherjparrett/TheUniverse/internal/auth"
	"github.com/christopherjparrett/TheUniverse/internal/config"
	"github.com/christopherjparrett/TheUniverse/internal/domain"
	"github.com/christopherjparrett/TheUniverse/internal/repository"
)

type seedFile struct {
	Planets []seedPlanet `json:"planets"`
	Users   []seedUser   `json:"users"`
}

type seedPlanet struct {
	Name            string   `json:"name"`
	PlanetType      string   `json:"planet_type"`
	DistanceFromSun float64  `json:"distance_from_sun"`
	Radius          float64  `json:"radius"`
	Description     *string  `json:"description"`
	Mass            *float64 `json:"mass"`
	OrbitalPeriod   *float64 `json:"orbital_period"`
}

type seedUser struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SeedDatabase loads planets and users from the configured seed file.
// Seeding is idempotent: it is skipped entirely once planets exist. Seed
// passwords are stored hashed, never verbatim.
func SeedDatabase(ctx context.Context, cfg config.Config, planets repository.PlanetRepository, users repository.UserRepository, logger *zap.Logger) error {
	if !cfg.Seed.Enabled {
		return nil
	}

	planetCount, err := planets.Count(ctx)
	if err != nil {
		return fmt.Errorf("count planets: %w", err)
	}
	userCount, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if planetCount > 0 && userCount > 0 {
		logger.Info("database already seeded, skipping")
		return nil
	}

	raw, err := os.ReadFile(cfg.Seed.File)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}

	seededPlanets := 0
	if planetCount == 0 {
		for _, p := range data.Planets {
			planet := &domain.Planet{
				Name:            p.Name,
				PlanetType:      p.PlanetType,
				DistanceFromSun: p.DistanceFromSun,
				Radius:          p.Radius,
				Description:     p.Description,
				Mass:            p.Mass,
				OrbitalPeriod:   p.OrbitalPeriod,
			}
			if err := planets.Create(ctx, planet); err != nil {
				return fmt.Errorf("seed planet %s: %w", p.Name, err)
			}
			seededPlanets++
		}
	}

	seededUsers := 0
	if userCount == 0 {
		for _, u := range data.Users {
			hash, err := auth.HashPassword(u.Password, cfg.Auth.BcryptCost)
			if err != nil {
				return fmt.Errorf("hash seed password for %s: %w", u.Username, err)
			}
			user := &domain.User{
				Username:     u.Username,
				Email:        u.Email,
				PasswordHash: hash,
				IsActive:     true,
			}
			if err := users.Create(ctx, user); err != nil {
				return fmt.Errorf("seed user %s: %w", u.Username, err)
			}
			seededUsers++
		}
	}

	logger.Info("database seeded",
		zap.Int("planets", seededPlanets),
		zap.Int("users", seededUsers))
	return nil
}
