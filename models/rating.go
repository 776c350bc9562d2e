package models

import "time"

// Rating holds one review per (user, product) pair. Uniqueness is enforced by
// the upsert handler, not by the schema.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	UserID    string    `gorm:"index" json:"user"`
	ProductID uint      `gorm:"index" json:"product"`
	Rating    int       `json:"rating"` // 1..5
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
