package schema

import "time"

const (
	LocationCollection = "locations"
)

// RiskLevel is the client-facing classification of an area or journey.
type RiskLevel string

const (
	RiskLevelLow     RiskLevel = "low"
	RiskLevelMedium  RiskLevel = "medium"
	RiskLevelHigh    RiskLevel = "high"
	RiskLevelUnknown RiskLevel = "unknown"
)

// Valid reports whether the level is one of the known values. An empty
// level is valid since devices may omit it.
func (l RiskLevel) Valid() bool {
	switch l {
	case "", RiskLevelLow, RiskLevelMedium, RiskLevelHigh, RiskLevelUnknown:
		return true
	}
	return false
}

// LocationRecord is a single device location report. Records are append
// only; the most recent one is mirrored onto the owner's presence
// document as the last known location.
type LocationRecord struct {
	Email     string    `bson:"email,omitempty" json:"email,omitempty"`
	Latitude  float64   `bson:"lat" json:"lat"`
	Longitude float64   `bson:"lng" json:"lng"`
	Accuracy  *float64  `bson:"accuracy,omitempty" json:"accuracy,omitempty"`
	RiskLevel RiskLevel `bson:"risk_level,omitempty" json:"riskLevel,omitempty"`
	Timestamp time.Time `bson:"ts" json:"timestamp"`
}
