package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

var (
	// ErrNoLocation means the traveler has never reported a location.
	// This is a normal absent result, not a storage fault.
	ErrNoLocation = fmt.Errorf("no location reported")
)

// LocationHistory - read access to appended location reports
type LocationHistory interface {
	GetLastLocation(email string) (*schema.LocationRecord, error)
	ListLocations(email string, earlierThan int64, limit int64) ([]schema.LocationRecord, error)
}

// GetLastLocation returns the newest history record by the reported
// timestamp field.
func (m *mongoDB) GetLastLocation(email string) (*schema.LocationRecord, error) {
	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var record schema.LocationRecord
	err := c.FindOne(ctx,
		bson.M{"email": email},
		options.FindOne().SetSort(bson.M{"ts": -1}),
	).Decode(&record)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNoLocation
	}
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// ListLocations pages backwards through the history of one traveler.
func (m *mongoDB) ListLocations(email string, earlierThan int64, limit int64) ([]schema.LocationRecord, error) {
	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	query, opts := historyQuery(email, earlierThan, limit)
	cur, err := c.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}

	result := make([]schema.LocationRecord, 0)
	for cur.Next(ctx) {
		var record schema.LocationRecord
		if err := cur.Decode(&record); err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, nil
}

func historyQuery(email string, earlierThan, limit int64) (bson.M, *options.FindOptions) {
	query := bson.M{
		"email": email,
		"ts":    bson.M{"$lt": time.Unix(earlierThan, 0).UTC()},
	}
	opts := options.Find()
	opts = opts.SetSort(bson.M{"ts": -1}).SetLimit(limit)
	return query, opts
}
