package store

import (
	"github.com/jinzhu/gorm"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

// AtlasCore is the main datastore surface of the service. Accounts live
// in postgres; everything else is delegated to the mongo store.
type AtlasCore interface {
	Ping() error

	// Account
	RegisterAccount(email, password string) (*schema.Account, error)
	GetAccount(email string) (*schema.Account, error)
	ValidateAccount(email, password string) (*schema.Account, error)
	SetProfileCompleted(email string, completed bool) error

	// Observer snapshot
	FullSnapshot() ([]schema.ObserverEntry, error)
}

// AtlasStore is an implementation of AtlasCore
type AtlasStore struct {
	ormDB *gorm.DB
	mongo MongoStore
}

func NewAtlasStore(ormDB *gorm.DB, mongo MongoStore) *AtlasStore {
	return &AtlasStore{
		ormDB: ormDB,
		mongo: mongo,
	}
}

// Ping is to check the storage health status
func (s *AtlasStore) Ping() error {
	if err := s.ormDB.DB().Ping(); err != nil {
		return err
	}
	return s.mongo.Ping()
}
