package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"      json:"_id"`
	ProductName       string             `bson:"productName"        json:"productName"`
	Image             string             `bson:"image"              json:"image"`
	Price             float64            `bson:"price"              json:"price"`
	OriginCountry     string             `bson:"originCountry"      json:"originCountry"`
	Rating            float64            `bson:"rating"             json:"rating"`
	AvailableQuantity int                `bson:"availableQuantity"  json:"availableQuantity"`
	UserEmail         string             `bson:"userEmail"          json:"userEmail"`
	CreatedAt         time.Time          `bson:"createdAt"          json:"createdAt"`
}
