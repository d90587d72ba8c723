package schema

import "go.mongodb.org/mongo-driver/bson/primitive"

const (
	ContactCollection = "contacts"
)

// Contact is an emergency contact belonging to a traveler.
type Contact struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail    string             `bson:"user_email" json:"userEmail"`
	Name         string             `bson:"name" json:"name"`
	Phone        string             `bson:"phone" json:"phone"`
	Relationship string             `bson:"relationship,omitempty" json:"relationship,omitempty"`
}
