package models

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"size:120;not null" json:"title"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageURL    string  `gorm:"size:512" json:"image_url"`

	Stylists []Stylist `gorm:"many2many:stylist_services;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Bookings []Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
