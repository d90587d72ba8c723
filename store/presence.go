package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

// Presence - operations on per-traveler presence state
type Presence interface {
	ReportLocation(email string, record schema.LocationRecord) (*schema.LocationRecord, error)
	StartJourney(email string, journey schema.Journey) (*schema.Journey, error)
	EndJourney(email string) error
	ListPresences() ([]schema.UserPresence, error)
}

// ReportLocation appends a location record to the history collection
// and overwrites the last-location mirror on the presence document.
// The mirror follows write order: a report carrying an older client
// timestamp still replaces a newer mirror. The whole location struct
// is swapped in a single $set so readers never see a partial write.
func (m *mongoDB) ReportLocation(email string, record schema.LocationRecord) (*schema.LocationRecord, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	record.Email = email
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now().UTC()
	}

	history := m.client.Database(m.database).Collection(schema.LocationCollection)
	if _, err := history.InsertOne(ctx, record); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"email":  email,
			"error":  err,
		}).Error("insert location record")
		return nil, err
	}

	mirror := record
	mirror.Email = ""

	presence := m.client.Database(m.database).Collection(schema.PresenceCollection)
	if _, err := presence.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"last_location": mirror}},
		options.Update().SetUpsert(true),
	); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"email":  email,
			"error":  err,
		}).Error("update last location mirror")
		return nil, err
	}

	return &record, nil
}

// StartJourney replaces the active journey unconditionally and stamps
// the start time at call time. Last write wins; there is no conflict
// error when a journey is already in progress.
func (m *mongoDB) StartJourney(email string, journey schema.Journey) (*schema.Journey, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	journey.StartTime = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.PresenceCollection)
	if _, err := c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"active_journey": journey}},
		options.Update().SetUpsert(true),
	); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"email":  email,
			"error":  err,
		}).Error("start journey")
		return nil, err
	}

	return &journey, nil
}

// EndJourney clears the active journey. It succeeds even when no
// journey is active.
func (m *mongoDB) EndJourney(email string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PresenceCollection)
	if _, err := c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{"active_journey": nil}},
		options.Update().SetUpsert(true),
	); err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"email":  email,
			"error":  err,
		}).Error("end journey")
		return err
	}

	return nil
}

// ListPresences returns the full presence snapshot, sorted by email so
// repeated polls see a stable order.
func (m *mongoDB) ListPresences() ([]schema.UserPresence, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PresenceCollection)
	cur, err := c.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"email": 1}))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list presences")
		return nil, err
	}

	result := make([]schema.UserPresence, 0)
	for cur.Next(ctx) {
		var p schema.UserPresence
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, nil
}
