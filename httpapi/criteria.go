package httpapi

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"haulflow/proposal"
	"haulflow/store"
)

// errInvalidQuery marks malformed query parameters; it maps to 400.
var errInvalidQuery = errors.New("httpapi: invalid query parameter")

// decodeCriteria turns the recognized query parameters into the typed
// criteria structure the filter engine consumes. An absent parameter
// leaves its criterion unset.
func decodeCriteria(c *gin.Context) (proposal.Criteria, error) {
	var (
		criteria proposal.Criteria
		err      error
	)

	if criteria.RadiusKm, err = floatParam(c, "radius"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.Center, err = pointParams(c, "lat", "lng"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.MaxPrice, err = floatParam(c, "price"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.MaxWeight, err = floatParam(c, "weight"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.MaxVolume, err = floatParam(c, "volume"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.MinManPower, err = intParam(c, "requiredPeople"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.Fragile, err = boolParam(c, "fragile"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.Cooling, err = boolParam(c, "coolingRequired"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.RideAlong, err = boolParam(c, "rideAlong"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.From, err = pointParams(c, "fromLat", "fromLng"); err != nil {
		return proposal.Criteria{}, err
	}
	if criteria.To, err = pointParams(c, "toLat", "toLng"); err != nil {
		return proposal.Criteria{}, err
	}
	if raw, ok := c.GetQuery("moveDateTime"); ok {
		criteria.MoveDateTime = &raw
	}

	return criteria, nil
}

func floatParam(c *gin.Context, name string) (*float64, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidQuery, name, raw)
	}
	return &v, nil
}

func intParam(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidQuery, name, raw)
	}
	return &v, nil
}

func boolParam(c *gin.Context, name string) (*bool, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", errInvalidQuery, name, raw)
	}
	return &v, nil
}

// pointParams decodes a lat/lng pair. Both halves must be present or both
// absent; a half-set pair is malformed input.
func pointParams(c *gin.Context, latName, lngName string) (*store.GeoPoint, error) {
	lat, err := floatParam(c, latName)
	if err != nil {
		return nil, err
	}
	lng, err := floatParam(c, lngName)
	if err != nil {
		return nil, err
	}
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, fmt.Errorf("%w: %s and %s must be set together", errInvalidQuery, latName, lngName)
	}
	return &store.GeoPoint{Latitude: *lat, Longitude: *lng}, nil
}
