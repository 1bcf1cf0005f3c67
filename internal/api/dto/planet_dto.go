package dto

import (
	"time"

	"github.com/christopherjparrett/TheUniverse/internal/domain"
)

// CreatePlanetRequest payload for POST /planets.
type CreatePlanetRequest struct {
	Name            string   `json:"name"`
	PlanetType      string   `json:"planet_type"`
	DistanceFromSun float64  `json:"distance_from_sun"`
	Radius          float64  `json:"radius"`
	Description     *string  `json:"description"`
	Mass            *float64 `json:"mass"`
	OrbitalPeriod   *float64 `json:"orbital_period"`
}

// Validate checks required fields and bounds.
func (r CreatePlanetRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Name == "" || len(r.Name) > 100 {
		details["name"] = "required, at most 100 characters"
	}
	if r.PlanetType == "" || len(r.PlanetType) > 50 {
		details["planet_type"] = "required, at most 50 characters"
	}
	if r.DistanceFromSun <= 0 {
		details["distance_from_sun"] = "must be greater than 0"
	}
	if r.Radius <= 0 {
		details["radius"] = "must be greater than 0"
	}
	if r.Description != nil && len(*r.Description) > 1000 {
		details["description"] = "at most 1000 characters"
	}
	if r.Mass != nil && *r.Mass <= 0 {
		details["mass"] = "must be greater than 0"
	}
	if r.OrbitalPeriod != nil && *r.OrbitalPeriod <= 0 {
		details["orbital_period"] = "must be greater than 0"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// ToPlanet maps the request to a domain planet.
func (r CreatePlanetRequest) ToPlanet() *domain.Planet {
	return &domain.Planet{
		Name:            r.Name,
		PlanetType:      r.PlanetType,
		DistanceFromSun: r.DistanceFromSun,
		Radius:          r.Radius,
		Description:     r.Description,
		Mass:            r.Mass,
		OrbitalPeriod:   r.OrbitalPeriod,
	}
}

// UpdatePlanetRequest payload for PUT /planets/:id. Absent fields leave
// the stored value untouched.
type UpdatePlanetRequest struct {
	Name            *string  `json:"name"`
	PlanetType      *string  `json:"planet_type"`
	DistanceFromSun *float64 `json:"distance_from_sun"`
	Radius          *float64 `json:"radius"`
	Description     *string  `json:"description"`
	Mass            *float64 `json:"mass"`
	OrbitalPeriod   *float64 `json:"orbital_period"`
}

// Validate checks bounds on whichever fields are present.
func (r UpdatePlanetRequest) Validate() map[string]any {
	details := map[string]any{}
	if r.Name != nil && (*r.Name == "" || len(*r.Name) > 100) {
		details["name"] = "must be 1 to 100 characters"
	}
	if r.PlanetType != nil && (*r.PlanetType == "" || len(*r.PlanetType) > 50) {
		details["planet_type"] = "must be 1 to 50 characters"
	}
	if r.DistanceFromSun != nil && *r.DistanceFromSun <= 0 {
		details["distance_from_sun"] = "must be greater than 0"
	}
	if r.Radius != nil && *r.Radius <= 0 {
		details["radius"] = "must be greater than 0"
	}
	if r.Description != nil && len(*r.Description) > 1000 {
		details["description"] = "at most 1000 characters"
	}
	if r.Mass != nil && *r.Mass <= 0 {
		details["mass"] = "must be greater than 0"
	}
	if r.OrbitalPeriod != nil && *r.OrbitalPeriod <= 0 {
		details["orbital_period"] = "must be greater than 0"
	}
	if len(details) == 0 {
		return nil
	}
	return details
}

// ToPatch maps the request onto an explicit patch structure.
func (r UpdatePlanetRequest) ToPatch() domain.PlanetPatch {
	return domain.PlanetPatch{
		Name:            r.Name,
		PlanetType:      r.PlanetType,
		DistanceFromSun: r.DistanceFromSun,
		Radius:          r.Radius,
		Description:     r.Description,
		Mass:            r.Mass,
		OrbitalPeriod:   r.OrbitalPeriod,
	}
}

// PlanetResponse response body.
type PlanetResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	PlanetType      string    `json:"planet_type"`
	DistanceFromSun float64   `json:"distance_from_sun"`
	Radius          float64   `json:"radius"`
	Description     *string   `json:"description"`
	Mass            *float64  `json:"mass"`
	OrbitalPeriod   *float64  `json:"orbital_period"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewPlanetResponse maps a domain planet.
func NewPlanetResponse(planet *domain.Planet) PlanetResponse {
	return PlanetResponse{
		ID:              planet.ID,
		Name:            planet.Name,
		PlanetType:      planet.PlanetType,
		DistanceFromSun: planet.DistanceFromSun,
		Radius:          planet.Radius,
		Description:     planet.Description,
		Mass:            planet.Mass,
		OrbitalPeriod:   planet.OrbitalPeriod,
		CreatedAt:       planet.CreatedAt,
		UpdatedAt:       planet.UpdatedAt,
	}
}
