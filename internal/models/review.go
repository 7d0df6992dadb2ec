package models

import "time"

type Review struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"type:text" json:"comment"`

	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `json:"-"`

	StylistID uint    `gorm:"not null;index" json:"stylist_id"`
	Stylist   Stylist `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
