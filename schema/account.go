package schema

import (
	"time"
)

// Account is a registered traveler identity. Credentials and the
// profile-completed flag live in postgres; everything keyed by the
// email afterwards (presence, profiles, contacts) lives in mongo.
type Account struct {
	Email            string    `json:"email" gorm:"primary_key"`
	PasswordDigest   string    `json:"-"`
	ProfileCompleted bool      `json:"profile_completed" gorm:"default:false"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
