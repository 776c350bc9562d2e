package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"-"`
	UserID    string     `gorm:"uniqueIndex" json:"user"` // one cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"products"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CartID    uint      `gorm:"index" json:"-"`
	ProductID uint      `json:"productId"`
	Product   *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"addedAt"`
}
