package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Category    string             `json:"category" bson:"category"`
	Price       int                `json:"price" bson:"price"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"`
	Images      []string           `json:"images,omitempty" bson:"images,omitempty"`
	Colors      []string           `json:"colors,omitempty" bson:"colors,omitempty"`
	Sizes       []string           `json:"sizes,omitempty" bson:"sizes,omitempty"`
	InStock     bool               `json:"inStock" bson:"inStock"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
