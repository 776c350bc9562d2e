package models

import "time"

type Coupon struct {
	ID        uint      `gorm:"primaryKey" json:"_id"`
	Code      string    `gorm:"unique;not null" json:"code"`
	Discount  float64   `gorm:"not null" json:"discount"` // percentage off the order total
	Valid     bool      `gorm:"default:false" json:"valid"`
	MaxUsage  int       `gorm:"not null" json:"maxUsage"`
	UsedCount int       `gorm:"default:0" json:"usedCount"`
	CreatedAt time.Time `json:"createdAt"`
}
