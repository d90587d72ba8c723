package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aarnavnk17/AtlasWatch/external/geoinfo"
)

// crimeStats resolves a free-text area name to a crime risk breakdown.
// Without an area name the caller gets a zero score rather than an
// error; when coordinates are provided and a maps client is configured
// the area name is reverse-geocoded first.
func (s *Server) crimeStats(c *gin.Context) {
	var params struct {
		Area string   `form:"area"`
		Lat  *float64 `form:"lat"`
		Lng  *float64 `form:"lng"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	area := params.Area
	if area == "" && params.Lat != nil && params.Lng != nil && s.geoClient != nil {
		results, err := s.geoClient.Get(*params.Lat, *params.Lng)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorUnknownArea, err)
			return
		}
		area = geoinfo.LocalityName(results)
	}

	if area == "" {
		c.JSON(http.StatusOK, gin.H{"score": 0})
		return
	}

	c.JSON(http.StatusOK, s.crimeResolver.Resolve(area))
}
