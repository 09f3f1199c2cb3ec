package proposal

import (
	"errors"

	"haulflow/geo"
	"haulflow/store"
)

var (
	// ErrRadiusWithoutCenter signals a radius criterion without a reference point.
	ErrRadiusWithoutCenter = errors.New("proposal: radius criterion requires a reference point")
	// ErrNegativeRadius signals a radius below zero.
	ErrNegativeRadius = errors.New("proposal: radius must not be negative")
)

// Criteria is the set of optional search constraints. A nil field imposes
// no constraint; every non-nil field must hold independently for a proposal
// to match. This keeps "fragile not specified" distinct from
// "fragile: false".
type Criteria struct {
	RadiusKm     *float64
	Center       *store.GeoPoint // reference point for RadiusKm
	MaxPrice     *float64
	MaxWeight    *float64
	MaxVolume    *float64
	MinManPower  *int
	Fragile      *bool
	Cooling      *bool
	RideAlong    *bool
	From         *store.GeoPoint
	To           *store.GeoPoint
	MoveDateTime *string
}

// Validate reports structurally invalid criteria. Valid criteria make
// Matches a pure predicate.
func (c Criteria) Validate() error {
	if c.RadiusKm != nil {
		if *c.RadiusKm < 0 {
			return ErrNegativeRadius
		}
		if c.Center == nil {
			return ErrRadiusWithoutCenter
		}
	}
	return nil
}

// Matches reports whether p satisfies every present criterion. Criteria
// compose as independent boolean checks (logical AND), so the result never
// depends on evaluation order; the fixed order below only enables
// short-circuiting. Matches requires criteria that passed Validate; a
// radius without a reference point is rejected there, not here.
func (c Criteria) Matches(p store.Proposal) bool {
	if c.RadiusKm != nil {
		d := geo.DistanceKm(p.From.Latitude, p.From.Longitude, c.Center.Latitude, c.Center.Longitude)
		if d > *c.RadiusKm {
			return false
		}
	}
	if c.MaxPrice != nil && p.Price > *c.MaxPrice {
		return false
	}
	if c.MaxWeight != nil && p.Weight > *c.MaxWeight {
		return false
	}
	if c.MaxVolume != nil && p.Volume > *c.MaxVolume {
		return false
	}
	if c.MinManPower != nil && p.ManPower < *c.MinManPower {
		return false
	}
	if c.Fragile != nil && p.Fragile != *c.Fragile {
		return false
	}
	if c.Cooling != nil && p.Cooling != *c.Cooling {
		return false
	}
	if c.RideAlong != nil && p.RideAlong != *c.RideAlong {
		return false
	}
	if c.From != nil && *c.From != p.From {
		return false
	}
	if c.To != nil && *c.To != p.To {
		return false
	}
	if c.MoveDateTime != nil && p.MoveDateTime != *c.MoveDateTime {
		return false
	}
	return true
}
