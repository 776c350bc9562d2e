package models

type Favorite struct {
	ID     uint           `gorm:"primaryKey" json:"-"`
	UserID string         `gorm:"uniqueIndex" json:"user"` // one favorites list per user
	Items  []FavoriteItem `gorm:"foreignKey:FavoriteID;constraint:OnDelete:CASCADE" json:"products"`
}

type FavoriteItem struct {
	ID         uint     `gorm:"primaryKey" json:"-"`
	FavoriteID uint     `gorm:"index" json:"-"`
	ProductID  uint     `json:"productId"`
	Product    *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
