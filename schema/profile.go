package schema

const (
	ProfileCollection = "profiles"
)

// Profile holds a traveler's travel document details, keyed by email.
type Profile struct {
	Email        string `bson:"email" json:"email"`
	Passport     string `bson:"passport,omitempty" json:"passport,omitempty"`
	DocumentType string `bson:"document_type,omitempty" json:"documentType,omitempty"`
	Nationality  string `bson:"nationality,omitempty" json:"nationality,omitempty"`
}

// ObserverEntry is one row of the dashboard polling snapshot: presence
// state joined with account and profile data by email. A traveler
// without a saved profile yields a nil Profile, not an error.
type ObserverEntry struct {
	Email           string          `json:"email"`
	ProfileComplete bool            `json:"profileComplete"`
	Profile         *Profile        `json:"profile"`
	LastLocation    *LocationRecord `json:"lastLocation"`
	ActiveJourney   *Journey        `json:"activeJourney"`
}
