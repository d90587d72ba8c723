package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/aarnavnk17/AtlasWatch/api/mocks"
	"github.com/aarnavnk17/AtlasWatch/schema"
	"github.com/aarnavnk17/AtlasWatch/store"
)

func TestReportLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	stored := schema.LocationRecord{
		Email:     "traveler@example.com",
		Latitude:  19.076,
		Longitude: 72.8777,
		RiskLevel: schema.RiskLevelHigh,
		Timestamp: time.Now().UTC(),
	}
	m.EXPECT().ReportLocation("traveler@example.com", gomock.Any()).Return(&stored, nil).Times(1)

	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/location", s.reportLocation)

	body := `{"email":"traveler@example.com","lat":19.076,"lng":72.8777,"riskLevel":"high"}`
	req := httptest.NewRequest("POST", "/location", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.LocationRecord `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 19.076, jResp.Result.Latitude)
	assert.Equal(t, schema.RiskLevelHigh, jResp.Result.RiskLevel)
}

func TestReportLocationMissingFields(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no store call should be made for rejected input
	m := mocks.NewMockMongoStore(ctl)

	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/location", s.reportLocation)

	for _, body := range []string{
		`{"lat":19.076,"lng":72.8777}`,
		`{"email":"traveler@example.com","lng":72.8777}`,
		`{"email":"traveler@example.com","lat":19.076}`,
		`{"email":"traveler@example.com","lat":19.076,"lng":72.8777,"riskLevel":"extreme"}`,
	} {
		req := httptest.NewRequest("POST", "/location", strings.NewReader(body))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code for body: %s", body)
	}
}

func TestLatestLocationAbsent(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().GetLastLocation("fresh@example.com").Return(nil, store.ErrNoLocation).Times(1)

	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/location/latest", s.latestLocation)

	req := httptest.NewRequest("GET", "/location/latest?email=fresh@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "an absent location is not an error")

	var jResp map[string]*schema.LocationRecord
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	loc, ok := jResp["location"]
	assert.True(t, ok)
	assert.Nil(t, loc)
}
