package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

var (
	// ErrNoProfile is the absent result for a traveler without a saved
	// profile.
	ErrNoProfile = fmt.Errorf("profile not found")

	// ErrPassportTaken means the passport number already belongs to a
	// different traveler.
	ErrPassportTaken = fmt.Errorf("passport already registered to another user")
)

// ProfileOperator - travel document profile operations
type ProfileOperator interface {
	GetProfile(email string) (*schema.Profile, error)
	UpsertProfile(profile schema.Profile) error
	ListProfiles() (map[string]schema.Profile, error)
}

func (m *mongoDB) GetProfile(email string) (*schema.Profile, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var p schema.Profile
	err := c.FindOne(ctx, bson.M{"email": email}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoProfile
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// UpsertProfile saves or replaces a traveler's profile. A non-empty
// passport number may not belong to two different emails.
func (m *mongoDB) UpsertProfile(profile schema.Profile) error {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if profile.Passport != "" {
		var existing schema.Profile
		err := c.FindOne(ctx, bson.M{"passport": profile.Passport}).Decode(&existing)
		if err != nil && err != mongo.ErrNoDocuments {
			return err
		}
		if err == nil && existing.Email != profile.Email {
			return ErrPassportTaken
		}
	}

	if _, err := c.UpdateOne(ctx,
		bson.M{"email": profile.Email},
		bson.M{"$set": profile},
		options.Update().SetUpsert(true),
	); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"email":  profile.Email,
			"error":  err,
		}).Error("upsert profile")
		return err
	}

	return nil
}

// ListProfiles returns all saved profiles keyed by email for the
// observer snapshot join.
func (m *mongoDB) ListProfiles() (map[string]schema.Profile, error) {
	c := m.client.Database(m.database).Collection(schema.ProfileCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	result := make(map[string]schema.Profile)
	for cur.Next(ctx) {
		var p schema.Profile
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		result[p.Email] = p
	}

	return result, nil
}
