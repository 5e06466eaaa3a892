// Package models defines the data structures the API reads and writes.
//
// There is exactly one resource: the Player. Storage backends translate it into their
// own row/document shapes (see internal/database), so this struct only carries the JSON
// contract that clients see.
package models

// Player is a flat, standalone record describing one athlete.
//
// ID is assigned by the store on creation and never changes afterwards. Its format depends
// on the backend: a 24-character hex ObjectID for MongoDB, a UUID for PostgreSQL and the
// in-memory store. The JSON key is "_id" to match the document-store shape clients
// already consume.
type Player struct {
	ID        string  `json:"_id"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Sport     string  `json:"sport"`
	Team      string  `json:"team"`
	Age       int     `json:"age"`      // Whole number, always > 0
	Rating    float64 `json:"rating"`   // 0 to 100 inclusive
	IsActive  bool    `json:"isActive"` // Whether the player is currently active
}
