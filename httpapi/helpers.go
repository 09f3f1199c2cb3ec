package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"haulflow/auth"
	"haulflow/offer"
	"haulflow/proposal"
	"haulflow/store"
)

// renderError maps domain errors to caller-visible outcomes. Anything
// unrecognized is a server-side failure and gets logged.
func (s *Server) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidID),
		errors.Is(err, errInvalidQuery),
		errors.Is(err, proposal.ErrNegativeRadius),
		errors.Is(err, proposal.ErrRadiusWithoutCenter),
		errors.Is(err, auth.ErrWeakPassword):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case errors.Is(err, proposal.ErrNotFound),
		errors.Is(err, auth.ErrUserNotFound),
		errors.Is(err, offer.ErrContractNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, auth.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
	default:
		if s.log != nil {
			s.log.Errorw("request failed",
				"error", err,
				"request_id", c.GetString(requestIDKey),
			)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

// userView is the public shape of a user; the password hash never leaves
// the store.
type userView struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Birthdate   string `json:"birthdate"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Username    string `json:"username"`
	AccountType string `json:"accountType"`
}

func newUserView(u store.User) userView {
	return userView{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Birthdate:   u.Birthdate,
		Email:       u.Email,
		Phone:       u.Phone,
		Username:    u.Username,
		AccountType: u.AccountType,
	}
}
