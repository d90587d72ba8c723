package geoinfo

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

// GeoInfo - interface to operate google maps reverse geocoding
type GeoInfo interface {
	Get(lat, lng float64) ([]maps.GeocodingResult, error)
}

type geoInfo struct {
	client *maps.Client
}

func (g *geoInfo) Get(lat, lng float64) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    lat,
		"lng":    lng,
	}).Info("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return g.client.Geocode(ctx, &maps.GeocodingRequest{
		LatLng: &maps.LatLng{
			Lat: lat,
			Lng: lng,
		},
		Language: "en",
	})
}

// LocalityName extracts the best area name from geocoding results:
// the locality if present, otherwise the level-2 then level-1
// administrative area. Empty when nothing matches.
func LocalityName(results []maps.GeocodingResult) string {
	var level1, level2 string
	for _, r := range results {
		for _, a := range r.AddressComponents {
			if len(a.Types) == 0 {
				continue
			}
			switch a.Types[0] {
			case "locality":
				return a.LongName
			case "administrative_area_level_2":
				if level2 == "" {
					level2 = a.LongName
				}
			case "administrative_area_level_1":
				if level1 == "" {
					level1 = a.LongName
				}
			}
		}
	}

	if level2 != "" {
		return level2
	}
	return level1
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
