package schema

import "time"

const (
	PresenceCollection = "presence"
)

// Journey is the single in-progress trip a traveler may have. Starting
// a new journey overwrites any previous one; ending it clears the field.
type Journey struct {
	StartLocation string    `bson:"start_location" json:"startLocation"`
	EndLocation   string    `bson:"end_location" json:"endLocation"`
	Mode          string    `bson:"mode" json:"mode"`
	Reference     string    `bson:"reference,omitempty" json:"reference,omitempty"`
	RiskLevel     RiskLevel `bson:"risk_level,omitempty" json:"riskLevel,omitempty"`
	StartTime     time.Time `bson:"start_time" json:"startTime"`
}

// UserPresence is the per-traveler mutable state document: the last
// known location mirror plus the active journey, keyed by email.
type UserPresence struct {
	Email         string          `bson:"email" json:"email"`
	LastLocation  *LocationRecord `bson:"last_location,omitempty" json:"lastLocation,omitempty"`
	ActiveJourney *Journey        `bson:"active_journey,omitempty" json:"activeJourney,omitempty"`
}
