package domain

import "time"

// Planet is the aggregate managed by the CRUD endpoints. Name is unique
// across all planets.
type Planet struct {
	ID              int64
	Name            string
	PlanetType      string
	DistanceFromSun float64
	Radius          float64
	Description     *string
	Mass            *float64
	OrbitalPeriod   *float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PlanetPatch carries a partial update. Nil fields are left untouched.
type PlanetPatch struct {
	Name            *string
	PlanetType      *string
	DistanceFromSun *float64
	Radius          *float64
	Description     *string
	Mass            *float64
	OrbitalPeriod   *float64
}

// Apply copies the set fields of the patch onto the planet.
func (p PlanetPatch) Apply(planet *Planet) {
	if p.Name != nil {
		planet.Name = *p.Name
	}
	if p.PlanetType != nil {
		planet.PlanetType = *p.PlanetType
	}
	if p.DistanceFromSun != nil {
		planet.DistanceFromSun = *p.DistanceFromSun
	}
	if p.Radius != nil {
		planet.Radius = *p.Radius
	}
	if p.Description != nil {
		planet.Description = p.Description
	}
	if p.Mass != nil {
		planet.Mass = p.Mass
	}
	if p.OrbitalPeriod != nil {
		planet.OrbitalPeriod = p.OrbitalPeriod
	}
}
