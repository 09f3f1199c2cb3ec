package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haulflow/proposal"
	"haulflow/store"
)

// contractPayload is the wire shape for create and partial update. Pointer
// fields distinguish "absent" from a zero value; an "id" key in the body is
// ignored by construction.
type contractPayload struct {
	FromLocation    *store.GeoPoint `json:"fromLocation"`
	ToLocation      *store.GeoPoint `json:"toLocation"`
	Price           *float64        `json:"price"`
	Weight          *float64        `json:"weight"`
	Volume          *float64        `json:"volume"`
	ManPower        *int            `json:"manPower"`
	Fragile         *bool           `json:"fragile"`
	CoolingRequired *bool           `json:"coolingRequired"`
	RideAlong       *bool           `json:"rideAlong"`
	MoveDateTime    *string         `json:"moveDateTime"`
	Status          *string         `json:"status"`
}

func (s *Server) searchContracts(c *gin.Context) {
	criteria, err := decodeCriteria(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	records, err := s.proposals.Search(c.Request.Context(), criteria)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": records})
}

func (s *Server) mapContracts(c *gin.Context) {
	criteria, err := decodeCriteria(c)
	if err != nil {
		s.renderError(c, err)
		return
	}

	records, err := s.proposals.Search(c.Request.Context(), criteria)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"features": records})
}

func (s *Server) getContract(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	record, err := s.proposals.GetByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

func (s *Server) createContract(c *gin.Context) {
	var payload contractPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}
	if payload.FromLocation == nil || payload.ToLocation == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "fromLocation and toLocation are required"})
		return
	}

	params := proposal.CreateParams{
		From: *payload.FromLocation,
		To:   *payload.ToLocation,
	}
	if payload.Price != nil {
		params.Price = *payload.Price
	}
	if payload.Weight != nil {
		params.Weight = *payload.Weight
	}
	if payload.Volume != nil {
		params.Volume = *payload.Volume
	}
	if payload.ManPower != nil {
		params.ManPower = *payload.ManPower
	}
	if payload.Fragile != nil {
		params.Fragile = *payload.Fragile
	}
	if payload.CoolingRequired != nil {
		params.Cooling = *payload.CoolingRequired
	}
	if payload.RideAlong != nil {
		params.RideAlong = *payload.RideAlong
	}
	if payload.MoveDateTime != nil {
		params.MoveDateTime = *payload.MoveDateTime
	}
	if payload.Status != nil {
		params.Status = *payload.Status
	}

	record, err := s.proposals.Create(c.Request.Context(), callerID(c), params)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

func (s *Server) updateContract(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	var payload contractPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	record, err := s.proposals.Update(c.Request.Context(), id, proposal.UpdateParams{
		From:         payload.FromLocation,
		To:           payload.ToLocation,
		Price:        payload.Price,
		Weight:       payload.Weight,
		Volume:       payload.Volume,
		ManPower:     payload.ManPower,
		Fragile:      payload.Fragile,
		Cooling:      payload.CoolingRequired,
		RideAlong:    payload.RideAlong,
		MoveDateTime: payload.MoveDateTime,
		Status:       payload.Status,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
