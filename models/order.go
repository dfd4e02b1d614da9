package models

import "time"

// Order is an append-only booking request record. Details holds whatever
// fields the client submitted, stored verbatim alongside the server-assigned
// id and timestamp.
type Order struct {
	ID        string         `bson:"id" json:"id"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	Details   map[string]any `bson:"details" json:"details"`
}
