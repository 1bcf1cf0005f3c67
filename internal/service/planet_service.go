package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/christopherjparrett/TheUniverse/internal/domain"
	"github.com/christopherjparrett/TheUniverse/internal/events"
	"github.com/christopherjparrett/TheUniverse/internal/persistence"
	"github.com/christopherjparrett/TheUniverse/internal/repository"
	apperrors "github.com/christopherjparrett/TheUniverse/pkg/util"
)

// PlanetService implements planet CRUD on top of the repository, with a
// redis read-through cache and event publication on mutations.
type PlanetService struct {
	planets    repository.PlanetRepository
	cache      *persistence.PlanetCache
	dispatcher events.Dispatcher
}

// NewPlanetService builds the service. cache and dispatcher may be nil.
func NewPlanetService(planets repository.PlanetRepository, cache *persistence.PlanetCache, dispatcher events.Dispatcher) *PlanetService {
	return &PlanetService{planets: planets, cache: cache, dispatcher: dispatcher}
}

// List returns all planets.
func (s *PlanetService) List(ctx context.Context) ([]domain.Planet, error) {
	if cached := s.cache.GetList(ctx); cached != nil {
		return cached, nil
	}
	planets, err := s.planets.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, planets)
	return planets, nil
}

// Get returns one planet by id.
func (s *PlanetService) Get(ctx context.Context, id int64) (*domain.Planet, error) {
	if cached := s.cache.GetPlanet(ctx, id); cached != nil {
		return cached, nil
	}
	planet, err := s.planets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Planet")
		}
		return nil, err
	}
	s.cache.SetPlanet(ctx, planet)
	return planet, nil
}

// Create inserts a new planet after checking the unique-name invariant.
func (s *PlanetService) Create(ctx context.Context, actor string, planet *domain.Planet) (*domain.Planet, error) {
	if _, err := s.planets.GetByName(ctx, planet.Name); err == nil {
		return nil, apperrors.NewConflict("Planet with this name already exists")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	if err := s.planets.Create(ctx, planet); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, planet.ID)
	s.publish(ctx, events.EventPlanetCreated, planet.ID, actor, events.PlanetCreatedPayload{
		Name:       planet.Name,
		PlanetType: planet.PlanetType,
	})
	return planet, nil
}

// Patch applies a partial update field by field.
func (s *PlanetService) Patch(ctx context.Context, actor string, id int64, patch domain.PlanetPatch) (*domain.Planet, error) {
	planet, err := s.planets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Planet")
		}
		return nil, err
	}

	if patch.Name != nil && *patch.Name != planet.Name {
		if _, err := s.planets.GetByName(ctx, *patch.Name); err == nil {
			return nil, apperrors.NewConflict("Planet with this name already exists")
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
	}

	patch.Apply(planet)
	if err := s.planets.Update(ctx, planet); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("Planet")
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, planet.ID)
	s.publish(ctx, events.EventPlanetUpdated, planet.ID, actor, events.PlanetUpdatedPayload{
		Name:          planet.Name,
		ChangedFields: changedFields(patch),
	})
	return planet, nil
}

// Delete removes a planet by id.
func (s *PlanetService) Delete(ctx context.Context, actor string, id int64) error {
	planet, err := s.planets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Planet")
		}
		return err
	}

	if err := s.planets.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("Planet")
		}
		return err
	}

	s.cache.Invalidate(ctx, id)
	s.publish(ctx, events.EventPlanetDeleted, id, actor, events.PlanetDeletedPayload{Name: planet.Name})
	return nil
}

func (s *PlanetService) publish(ctx context.Context, eventType events.EventType, planetID int64, actor string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		PlanetID:  planetID,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func changedFields(patch domain.PlanetPatch) []string {
	fields := make([]string, 0, 7)
	if patch.Name != nil {
		fields = append(fields, "name")
	}
	if patch.PlanetType != nil {
		fields = append(fields, "planet_type")
	}
	if patch.DistanceFromSun != nil {
		fields = append(fields, "distance_from_sun")
	}
	if patch.Radius != nil {
		fields = append(fields, "radius")
	}
	if patch.Description != nil {
		fields = append(fields, "description")
	}
	if patch.Mass != nil {
		fields = append(fields, "mass")
	}
	if patch.OrbitalPeriod != nil {
		fields = append(fields, "orbital_period")
	}
	return fields
}
