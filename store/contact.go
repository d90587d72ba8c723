package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

var (
	ErrContactNotFound = fmt.Errorf("contact not found")
)

// ContactOperator - emergency contact operations
type ContactOperator interface {
	ListContacts(email string) ([]schema.Contact, error)
	AddContact(contact schema.Contact) (*schema.Contact, error)
	UpdateContact(id primitive.ObjectID, name, phone, relationship string) error
	DeleteContact(id primitive.ObjectID) error
}

func (m *mongoDB) ListContacts(email string) ([]schema.Contact, error) {
	c := m.client.Database(m.database).Collection(schema.ContactCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	cur, err := c.Find(ctx, bson.M{"user_email": email})
	if err != nil {
		return nil, err
	}

	result := make([]schema.Contact, 0)
	for cur.Next(ctx) {
		var contact schema.Contact
		if err := cur.Decode(&contact); err != nil {
			return nil, err
		}
		result = append(result, contact)
	}

	return result, nil
}

func (m *mongoDB) AddContact(contact schema.Contact) (*schema.Contact, error) {
	c := m.client.Database(m.database).Collection(schema.ContactCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	contact.ID = primitive.NewObjectID()
	if _, err := c.InsertOne(ctx, contact); err != nil {
		return nil, err
	}

	return &contact, nil
}

// UpdateContact sets the provided non-empty fields on a contact.
func (m *mongoDB) UpdateContact(id primitive.ObjectID, name, phone, relationship string) error {
	c := m.client.Database(m.database).Collection(schema.ContactCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	update := bson.M{}
	if name != "" {
		update["name"] = name
	}
	if phone != "" {
		update["phone"] = phone
	}
	if relationship != "" {
		update["relationship"] = relationship
	}
	if len(update) == 0 {
		return nil
	}

	result, err := c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrContactNotFound
	}

	return nil
}

func (m *mongoDB) DeleteContact(id primitive.ObjectID) error {
	c := m.client.Database(m.database).Collection(schema.ContactCollection)
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	_, err := c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
