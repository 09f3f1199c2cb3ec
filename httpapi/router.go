// Package httpapi exposes the marketplace over HTTP. It decodes wire
// representations into the structures the domain services consume and maps
// domain errors back to status codes; no business logic lives here.
package httpapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"haulflow/auth"
	"haulflow/offer"
	"haulflow/proposal"
)

// Server bundles the services the handlers dispatch to.
type Server struct {
	auth      *auth.Service
	proposals *proposal.Service
	offers    *offer.Service
	log       *zap.SugaredLogger
}

// NewRouter wires middleware and routes and returns the gin engine.
func NewRouter(authSvc *auth.Service, proposals *proposal.Service, offers *offer.Service, log *zap.SugaredLogger) *gin.Engine {
	s := &Server{
		auth:      authSvc,
		proposals: proposals,
		offers:    offers,
		log:       log,
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log), cors.Default())

	v1 := r.Group("/api/v1")

	a := v1.Group("/auth")
	a.POST("/register", s.register)
	a.POST("/login", s.login)
	a.POST("/logout", s.logout)
	a.POST("/refresh", s.refresh)

	v1.GET("/users/:id", s.getUser)
	v1.GET("/users/:id/contracts", s.listUserContracts)

	// Kept for clients of the previous API: same search, feature-collection shape.
	v1.GET("/map/contracts", s.mapContracts)

	c := v1.Group("/contracts")
	c.GET("", s.searchContracts)
	c.GET("/:id", s.getContract)
	c.GET("/:id/offers", s.listContractOffers)

	authed := c.Group("", s.requireAuth())
	authed.POST("", s.createContract)
	authed.PATCH("/:id", s.updateContract)
	authed.POST("/:id/offers", s.createContractOffer)

	return r
}
