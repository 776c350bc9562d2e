package models

import (
	"time"

	"gorm.io/gorm"
)

type Gender string
type MovementType string

const (
	GenderMen    Gender = "men"
	GenderWomen  Gender = "women"
	GenderUnisex Gender = "unisex"

	MovementAutomatic MovementType = "automatic"
	MovementQuartz    MovementType = "quartz"
)

// ValidGender reports whether g is one of the three catalog genders.
func ValidGender(g string) bool {
	switch Gender(g) {
	case GenderMen, GenderWomen, GenderUnisex:
		return true
	}
	return false
}

// ValidMovementType reports whether m is a known movement type.
func ValidMovementType(m string) bool {
	switch MovementType(m) {
	case MovementAutomatic, MovementQuartz:
		return true
	}
	return false
}

type Product struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"_id"`
	Name         string  `gorm:"not null" json:"name"`
	Brand        string  `gorm:"index" json:"brand"`
	Category     string  `gorm:"index" json:"category"`
	Price        float64 `gorm:"not null" json:"price"`
	Before       float64 `json:"before,omitempty"` // pre-discount price
	Description  string  `json:"description"`
	CountInStock int     `json:"countInStock"`
	Gender       Gender  `gorm:"type:VARCHAR(10)" json:"gender"`
	CaseColor    string  `json:"caseColor"`
	DialColor    string  `json:"dialColor"`
	CaseMaterial string  `json:"caseMaterial"`
	// Field name kept as the storefront clients expect it.
	MovementType MovementType   `gorm:"type:VARCHAR(12)" json:"movmentType"`
	Class        string         `gorm:"index" json:"class"`
	Img          string         `json:"img"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
