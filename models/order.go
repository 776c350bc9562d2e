package models

import "time"

type OrderStatus string
type PaymentMethod string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"

	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentCard           PaymentMethod = "Pay with Card"
)

// Order is an immutable snapshot taken at checkout time. Only the status
// changes after creation.
type Order struct {
	ID              uint            `gorm:"primaryKey" json:"_id"`
	UserID          string          `gorm:"index" json:"userId"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"products"`
	TotalPrice      float64         `json:"totalPrice"`
	PaymentMethod   PaymentMethod   `gorm:"type:VARCHAR(20)" json:"paymentMethod"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'Pending'" json:"status"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shippingAddress"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// OrderItem carries the product fields as they were at checkout, so later
// catalog edits do not rewrite order history.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type ShippingAddress struct {
	FullName   string `json:"fullName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}
