package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/aarnavnk17/AtlasWatch/store"
)

// accountRegister is the API for registering a new traveler account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")

	var params struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorCannotParseRequest.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Email == "" || params.Password == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	a, err := s.store.RegisterAccount(params.Email, params.Password)
	if err == store.ErrEmailTaken {
		abortWithEncoding(c, http.StatusBadRequest, errorEmailTaken)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	logger.WithField("email", a.Email).Info("account registered")

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountLogin verifies credentials and returns a signed token
func (s *Server) accountLogin(c *gin.Context) {
	var params struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Email == "" || params.Password == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	a, err := s.store.ValidateAccount(params.Email, params.Password)
	if err == store.ErrInvalidCredentials || gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusUnauthorized, errorInvalidCredentials)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	token, err := issueJWT(a.Email)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jwt_token": token,
		"email":     a.Email,
	})
}

// accountDetail is the API to query the authenticated account
func (s *Server) accountDetail(c *gin.Context) {
	email := c.GetString("requester")

	a, err := s.store.GetAccount(email)
	if gorm.IsRecordNotFoundError(err) {
		abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}
