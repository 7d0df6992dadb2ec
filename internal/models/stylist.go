package models

type Stylist struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Bio  string `gorm:"type:text" json:"bio"`

	Services []Service `gorm:"many2many:stylist_services;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Bookings []Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Reviews  []Review  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}

// StylistService is the join row between stylists and the services they offer.
type StylistService struct {
	StylistID uint `gorm:"primaryKey"`
	ServiceID uint `gorm:"primaryKey"`
}

func (StylistService) TableName() string {
	return "stylist_services"
}
