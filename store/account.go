package store

import (
	"fmt"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

var (
	ErrEmailTaken         = fmt.Errorf("email already registered")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
)

// RegisterAccount creates a traveler account with a bcrypt password
// digest. A duplicate email surfaces as ErrEmailTaken.
func (s *AtlasStore) RegisterAccount(email, password string) (*schema.Account, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	a := schema.Account{
		Email:          email,
		PasswordDigest: string(digest),
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns the account of a given email
func (s *AtlasStore) GetAccount(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ValidateAccount checks an email/password pair and returns the account
// when the digest matches.
func (s *AtlasStore) ValidateAccount(email, password string) (*schema.Account, error) {
	a, err := s.GetAccount(email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordDigest), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return a, nil
}

// SetProfileCompleted flips the profile-completed flag used by the
// observer dashboard.
func (s *AtlasStore) SetProfileCompleted(email string, completed bool) error {
	return s.ormDB.Model(schema.Account{}).
		Where("email = ?", email).
		Update("profile_completed", completed).Error
}
