package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aarnavnk17/AtlasWatch/schema"
	"github.com/aarnavnk17/AtlasWatch/store"
)

const (
	defaultHistoryLimit = int64(100)
)

// reportLocation ingests a periodic device location report
func (s *Server) reportLocation(c *gin.Context) {
	var params struct {
		Email     string           `json:"email"`
		Lat       *float64         `json:"lat"`
		Lng       *float64         `json:"lng"`
		Accuracy  *float64         `json:"accuracy"`
		Timestamp *int64           `json:"timestamp"`
		RiskLevel schema.RiskLevel `json:"riskLevel"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Email == "" || params.Lat == nil || params.Lng == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !params.RiskLevel.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("unknown risk level: %s", params.RiskLevel))
		return
	}

	record := schema.LocationRecord{
		Latitude:  *params.Lat,
		Longitude: *params.Lng,
		Accuracy:  params.Accuracy,
		RiskLevel: params.RiskLevel,
	}
	// client timestamps are epoch milliseconds
	if params.Timestamp != nil {
		record.Timestamp = time.Unix(0, *params.Timestamp*int64(time.Millisecond)).UTC()
	}

	stored, err := s.mongoStore.ReportLocation(params.Email, record)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": stored,
	})
}

// latestLocation returns the newest reported location of a traveler.
// A traveler without history gets a null location, not an error.
func (s *Server) latestLocation(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	record, err := s.mongoStore.GetLastLocation(email)
	if err == store.ErrNoLocation {
		c.JSON(http.StatusOK, gin.H{"location": nil})
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": record})
}

// locationHistory pages backwards through a traveler's reports
func (s *Server) locationHistory(c *gin.Context) {
	var params struct {
		Email  string `form:"email"`
		Before int64  `form:"before"`
		Limit  int64  `form:"limit"`
	}

	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var before, limit int64

	switch {
	case params.Before > 0:
		before = params.Before
	case params.Before == 0:
		before = time.Now().Unix()
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("negative before"))
		return
	}

	switch {
	case params.Limit > 0:
		limit = params.Limit
	case params.Limit == 0:
		limit = defaultHistoryLimit
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("negative limit"))
		return
	}

	records, err := s.mongoStore.ListLocations(params.Email, before, limit)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"locations": records})
}
