package store

import (
	"github.com/aarnavnk17/AtlasWatch/schema"
)

// FullSnapshot builds the observer dashboard view: every registered
// traveler joined with presence state and profile data by email.
// Missing presence or profile entries yield nil fields, never errors.
// The read is side-effect-free and safe on any polling cadence.
func (s *AtlasStore) FullSnapshot() ([]schema.ObserverEntry, error) {
	var accounts []schema.Account
	if err := s.ormDB.Order("email").Find(&accounts).Error; err != nil {
		return nil, err
	}

	presences, err := s.mongo.ListPresences()
	if err != nil {
		return nil, err
	}
	presenceByEmail := make(map[string]schema.UserPresence, len(presences))
	for _, p := range presences {
		presenceByEmail[p.Email] = p
	}

	profiles, err := s.mongo.ListProfiles()
	if err != nil {
		return nil, err
	}

	entries := make([]schema.ObserverEntry, 0, len(accounts))
	for _, a := range accounts {
		entry := schema.ObserverEntry{
			Email:           a.Email,
			ProfileComplete: a.ProfileCompleted,
		}

		if p, ok := presenceByEmail[a.Email]; ok {
			entry.LastLocation = p.LastLocation
			entry.ActiveJourney = p.ActiveJourney
		}

		if profile, ok := profiles[a.Email]; ok {
			p := profile
			entry.Profile = &p
		}

		entries = append(entries, entry)
	}

	return entries, nil
}
