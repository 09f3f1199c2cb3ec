package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"haulflow/auth"
	"haulflow/store"
)

func (s *Server) register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := s.auth.Register(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":          result.User.ID,
		"username":    result.User.Username,
		"accountType": result.User.AccountType,
		"token":       result.Token,
	})
}

func (s *Server) login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := s.auth.Login(c.Request.Context(), req)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": result.Token,
		"user":  newUserView(result.User),
	})
}

func (s *Server) logout(c *gin.Context) {
	// Tokens are stateless; logout is a client-side discard.
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

func (s *Server) refresh(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "no token provided"})
		return
	}

	token, err := s.auth.Refresh(req.Token)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) getUser(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	user, err := s.auth.GetUserByID(c.Request.Context(), id)
	if err != nil {
		s.renderError(c, err)
		return
	}

	token, err := s.auth.IssueToken(user.ID, user.Username)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  newUserView(user),
		"token": token,
	})
}

func (s *Server) listUserContracts(c *gin.Context) {
	id, err := store.ParseID(c.Param("id"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	records, err := s.proposals.ListByRequester(c.Request.Context(), id, c.Query("status"))
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"contracts": records})
}
