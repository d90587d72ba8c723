package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"googlemaps.github.io/maps"

	"github.com/aarnavnk17/AtlasWatch/crime"
	"github.com/aarnavnk17/AtlasWatch/external/mocks"
	"github.com/aarnavnk17/AtlasWatch/schema"
)

var crimeTestTable = schema.CrimeTable{
	States: []schema.CrimeState{
		{
			Name: "Maharashtra",
			Cities: []schema.CrimeCity{
				{
					Name:  "Mumbai",
					Score: 3550,
					SubAreas: []schema.CrimeSubArea{
						{Name: "Dharavi", Score: 4100},
					},
				},
			},
		},
	},
}

func newCrimeTestRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/crime-stats", s.crimeStats)
	return router
}

func TestCrimeStatsKnownArea(t *testing.T) {
	s := Server{
		crimeResolver: crime.NewResolver(crimeTestTable),
	}
	router := newCrimeTestRouter(&s)

	req := httptest.NewRequest("GET", "/crime-stats?area=mumbai", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var breakdown schema.RiskBreakdown
	err := json.Unmarshal(w.Body.Bytes(), &breakdown)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.RiskBreakdown{Theft: 44, Assault: 44, Fraud: 44}, breakdown)
}

func TestCrimeStatsMissingArea(t *testing.T) {
	s := Server{
		crimeResolver: crime.NewResolver(crimeTestTable),
	}
	router := newCrimeTestRouter(&s)

	req := httptest.NewRequest("GET", "/crime-stats", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]int
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, 0, jResp["score"])
}

func TestCrimeStatsUnknownAreaDeterministic(t *testing.T) {
	s := Server{
		crimeResolver: crime.NewResolver(crimeTestTable),
	}
	router := newCrimeTestRouter(&s)

	run := func() string {
		req := httptest.NewRequest("GET", "/crime-stats?area=Zzqx123", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
		return w.Body.String()
	}

	assert.Equal(t, run(), run(), "unknown areas must resolve deterministically")
}

func TestCrimeStatsByCoordinates(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	g := mocks.NewMockGeoInfo(ctl)
	g.EXPECT().Get(19.076, 72.8777).Return([]maps.GeocodingResult{
		{
			AddressComponents: []maps.AddressComponent{
				{LongName: "Mumbai", Types: []string{"locality"}},
				{LongName: "Maharashtra", Types: []string{"administrative_area_level_1"}},
			},
		},
	}, nil).Times(1)

	s := Server{
		crimeResolver: crime.NewResolver(crimeTestTable),
		geoClient:     g,
	}
	router := newCrimeTestRouter(&s)

	req := httptest.NewRequest("GET", "/crime-stats?lat=19.076&lng=72.8777", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var breakdown schema.RiskBreakdown
	err := json.Unmarshal(w.Body.Bytes(), &breakdown)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.RiskBreakdown{Theft: 44, Assault: 44, Fraud: 44}, breakdown)
}
