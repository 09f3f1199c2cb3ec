package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haulflow/offer"
	"haulflow/store"
)

func (s *Server) listContractOffers(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	records, err := s.offers.ListByContract(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"offers": records})
}

func (s *Server) createContractOffer(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	var payload struct {
		Price  float64 `json:"price"`
		Status string  `json:"status"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	record, err := s.offers.Create(c.Request.Context(), callerID(c), id, offer.CreateParams{
		Price:  payload.Price,
		Status: payload.Status,
	})
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}
