package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID       string             `bson:"uid"           json:"uid"` // external auth subject id
	Name      string             `bson:"name"          json:"name"`
	Email     string             `bson:"email"         json:"email"`
	PhotoURL  string             `bson:"photoURL"      json:"photoURL"`
	Role      string             `bson:"role"          json:"role"` // "user" | "admin"
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
	Imports   []ImportRecord     `bson:"imports,omitempty" json:"imports,omitempty"`
}

// ImportRecord lives inside User.Imports. ProductID is kept as the raw
// string the import request carried; products deleted afterwards leave
// dangling records which readers filter out.
type ImportRecord struct {
	ProductID        string    `bson:"productId"        json:"productId"`
	ImportedQuantity int       `bson:"importedQuantity" json:"importedQuantity"`
	Date             time.Time `bson:"date"             json:"date"`
}

// ImportedProduct is the read model for /my-imports: the resolved
// product joined with the quantity the user took.
type ImportedProduct struct {
	Product
	ImportedQuantity int       `json:"importedQuantity"`
	Date             time.Time `json:"importDate"`
}
