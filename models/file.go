package models

import "time"

// StoredFile keeps uploaded images in the database rather than on disk.
type StoredFile struct {
	ID          uint      `gorm:"primaryKey" json:"_id"`
	Name        string    `json:"name"`
	Data        []byte    `gorm:"type:bytea" json:"-"`
	ContentType string    `json:"contentType"`
	ProductID   uint      `gorm:"index" json:"productId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
