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
)

func TestStartJourney(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	started := schema.Journey{
		StartLocation: "Mumbai",
		EndLocation:   "Pune",
		Mode:          "car",
		StartTime:     time.Now().UTC(),
	}
	m.EXPECT().StartJourney("traveler@example.com", gomock.Any()).Return(&started, nil).Times(1)

	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/journey", s.startJourney)

	body := `{"email":"traveler@example.com","startLocation":"Mumbai","endLocation":"Pune","mode":"car"}`
	req := httptest.NewRequest("POST", "/journey", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Result schema.Journey `json:"result"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, "Mumbai", jResp.Result.StartLocation)
	assert.False(t, jResp.Result.StartTime.IsZero())
}

func TestStartJourneyMissingEmail(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/journey", s.startJourney)

	body := `{"startLocation":"Mumbai","endLocation":"Pune","mode":"car"}`
	req := httptest.NewRequest("POST", "/journey", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestEndJourney(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().EndJourney("traveler@example.com").Return(nil).Times(2)

	s := Server{mongoStore: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.DELETE("/journey", s.endJourney)

	// email in the query string
	req := httptest.NewRequest("DELETE", "/journey?email=traveler@example.com", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	// email in the body
	req = httptest.NewRequest("DELETE", "/journey", strings.NewReader(`{"email":"traveler@example.com"}`))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}
