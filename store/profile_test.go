package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

type ProfileTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewProfileTestSuite(connURI, dbName string) *ProfileTestSuite {
	return &ProfileTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *ProfileTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

// CleanMongoDB drop the whole test mongodb
func (s *ProfileTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *ProfileTestSuite) TestUpsertAndGetProfile() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	err := store.UpsertProfile(schema.Profile{
		Email:        "profile-upsert@example.com",
		Passport:     "P1234567",
		DocumentType: "passport",
		Nationality:  "IN",
	})
	s.NoError(err)

	p, err := store.GetProfile("profile-upsert@example.com")
	s.NoError(err)
	s.Equal("P1234567", p.Passport)
	s.Equal("IN", p.Nationality)

	// saving again replaces the document
	err = store.UpsertProfile(schema.Profile{
		Email:        "profile-upsert@example.com",
		Passport:     "P1234567",
		DocumentType: "passport",
		Nationality:  "NP",
	})
	s.NoError(err)

	p, err = store.GetProfile("profile-upsert@example.com")
	s.NoError(err)
	s.Equal("NP", p.Nationality)
}

func (s *ProfileTestSuite) TestUpsertProfilePassportTaken() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.UpsertProfile(schema.Profile{
		Email:    "passport-owner@example.com",
		Passport: "X9999999",
	}))

	err := store.UpsertProfile(schema.Profile{
		Email:    "passport-thief@example.com",
		Passport: "X9999999",
	})
	s.Equal(ErrPassportTaken, err)
}

func (s *ProfileTestSuite) TestGetProfileAbsent() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	p, err := store.GetProfile("no-profile@example.com")
	s.Nil(p)
	s.Equal(ErrNoProfile, err)
}

func (s *ProfileTestSuite) TestListProfiles() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	s.NoError(store.UpsertProfile(schema.Profile{
		Email:    "profile-list@example.com",
		Passport: "L0000001",
	}))

	profiles, err := store.ListProfiles()
	s.NoError(err)

	p, ok := profiles["profile-list@example.com"]
	s.True(ok)
	s.Equal("L0000001", p.Passport)
}

func TestProfileTestSuite(t *testing.T) {
	suite.Run(t, NewProfileTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
