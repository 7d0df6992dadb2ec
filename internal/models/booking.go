package models

import "time"

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentTime *time.Time `json:"appointment_time"`
	PaymentStatus   string     `gorm:"size:20;not null;default:'pending'" json:"payment_status"`
	PaymentIntentID string     `gorm:"size:100" json:"payment_intent_id"`

	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `json:"-"`

	StylistID uint    `gorm:"not null;index" json:"stylist_id"`
	Stylist   Stylist `json:"-"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
