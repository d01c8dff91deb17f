package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// NewID returns a fresh 24 character hex identifier. Every backend uses the
// same format so an id is valid or invalid regardless of where it is stored.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

func IsValidID(id string) bool {
	return primitive.IsValidObjectID(id)
}
