package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/aarnavnk17/AtlasWatch/api/mocks"
	"github.com/aarnavnk17/AtlasWatch/schema"
)

func TestAdminUsers(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockAtlasCore(ctl)

	snapshot := []schema.ObserverEntry{
		{
			Email:           "complete@example.com",
			ProfileComplete: true,
			Profile: &schema.Profile{
				Email:        "complete@example.com",
				Passport:     "P1234567",
				DocumentType: "passport",
				Nationality:  "IN",
			},
			LastLocation: &schema.LocationRecord{Latitude: 19.07, Longitude: 72.87},
		},
		{
			// registered but never saved a profile or reported a location
			Email: "fresh@example.com",
		},
	}
	m.EXPECT().FullSnapshot().Return(snapshot, nil).Times(1)

	s := Server{store: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(s.apikeyAuthentication("test-api-key"))
	admin.GET("/users", s.adminUsers)

	req := httptest.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("Api-Token", "test-api-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var uResp struct {
		Users []schema.ObserverEntry `json:"users"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &uResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Len(t, uResp.Users, 2)
	assert.Equal(t, "complete@example.com", uResp.Users[0].Email)
	assert.True(t, uResp.Users[0].ProfileComplete)
	assert.Nil(t, uResp.Users[1].Profile)
	assert.Nil(t, uResp.Users[1].LastLocation)
	assert.Nil(t, uResp.Users[1].ActiveJourney)
}

func TestAdminUsersForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockAtlasCore(ctl)

	s := Server{store: m}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	admin := router.Group("/admin")
	admin.Use(s.apikeyAuthentication("test-api-key"))
	admin.GET("/users", s.adminUsers)

	// no token at all
	req := httptest.NewRequest("GET", "/admin/users", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	// wrong token
	req = httptest.NewRequest("GET", "/admin/users", nil)
	req.Header.Set("Api-Token", "not-the-key")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
