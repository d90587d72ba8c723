package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

// startJourney records a traveler's new active journey, replacing any
// journey already in progress. Last write wins; there is no conflict
// response.
func (s *Server) startJourney(c *gin.Context) {
	var params struct {
		Email         string           `json:"email"`
		StartLocation string           `json:"startLocation"`
		EndLocation   string           `json:"endLocation"`
		Mode          string           `json:"mode"`
		Reference     string           `json:"reference"`
		RiskLevel     schema.RiskLevel `json:"riskLevel"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !params.RiskLevel.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("unknown risk level: %s", params.RiskLevel))
		return
	}

	journey, err := s.mongoStore.StartJourney(params.Email, schema.Journey{
		StartLocation: params.StartLocation,
		EndLocation:   params.EndLocation,
		Mode:          params.Mode,
		Reference:     params.Reference,
		RiskLevel:     params.RiskLevel,
	})
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": journey,
	})
}

// endJourney clears the active journey. Idempotent: ending with no
// journey active still succeeds. The email may come from the query
// string or the request body.
func (s *Server) endJourney(c *gin.Context) {
	var params struct {
		Email string `json:"email"`
	}
	// body is optional for DELETE
	_ = c.ShouldBindJSON(&params)

	email := params.Email
	if email == "" {
		email = c.Query("email")
	}

	if email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.mongoStore.EndJourney(email); shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
