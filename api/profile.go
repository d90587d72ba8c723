package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aarnavnk17/AtlasWatch/schema"
	"github.com/aarnavnk17/AtlasWatch/store"
)

// getProfile returns a traveler's travel document profile. A missing
// profile yields a null payload, not an error.
func (s *Server) getProfile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	profile, err := s.mongoStore.GetProfile(email)
	if err == store.ErrNoProfile {
		c.JSON(http.StatusOK, gin.H{"profile": nil})
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// saveProfile upserts a traveler's profile and marks the account as
// profile-completed for the observer dashboard.
func (s *Server) saveProfile(c *gin.Context) {
	var params struct {
		Email        string `json:"email"`
		Passport     string `json:"passport"`
		DocumentType string `json:"documentType"`
		Nationality  string `json:"nationality"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	err := s.mongoStore.UpsertProfile(schema.Profile{
		Email:        params.Email,
		Passport:     params.Passport,
		DocumentType: params.DocumentType,
		Nationality:  params.Nationality,
	})
	if err == store.ErrPassportTaken {
		abortWithEncoding(c, http.StatusBadRequest, errorPassportTaken)
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	if err := s.store.SetProfileCompleted(params.Email, true); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
