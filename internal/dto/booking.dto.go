package dto

import (
	"time"

	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type BookingDTO struct {
	ID              uint       `json:"id"`
	AppointmentTime *time.Time `json:"appointment_time"`
	PaymentStatus   string     `json:"payment_status"`
	PaymentIntentID string     `json:"payment_intent_id"`
	CreatedAt       time.Time  `json:"created_at"`

	Customer BookingCustomer `json:"customer"`
	Service  BookingService  `json:"service"`
	Stylist  BookingStylist  `json:"stylist"`
}

type BookingCustomer struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type BookingService struct {
	ID    uint    `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
}

type BookingStylist struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// AdminBookingDTO is the flattened row used by the admin listing.
type AdminBookingDTO struct {
	ID              uint       `json:"id"`
	CustomerName    string     `json:"customer_name"`
	StylistName     string     `json:"stylist_name"`
	ServiceName     string     `json:"service_name"`
	ServicePrice    float64    `json:"service_price"`
	AppointmentTime *time.Time `json:"appointment_time"`
	PaymentStatus   string     `json:"payment_status"`
}

// Booking expects Customer, Stylist and Service to be loaded.
func Booking(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:              b.ID,
		AppointmentTime: b.AppointmentTime,
		PaymentStatus:   b.PaymentStatus,
		PaymentIntentID: b.PaymentIntentID,
		CreatedAt:       b.CreatedAt,
		Customer:        BookingCustomer{ID: b.CustomerID, Name: b.Customer.Name},
		Service:         BookingService{ID: b.ServiceID, Title: b.Service.Title, Price: b.Service.Price},
		Stylist:         BookingStylist{ID: b.StylistID, Name: b.Stylist.Name},
	}
}

func Bookings(list []models.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for i := range list {
		out = append(out, Booking(&list[i]))
	}
	return out
}

func AdminBookings(list []models.Booking) []AdminBookingDTO {
	out := make([]AdminBookingDTO, 0, len(list))
	for _, b := range list {
		out = append(out, AdminBookingDTO{
			ID:              b.ID,
			CustomerName:    b.Customer.Name,
			StylistName:     b.Stylist.Name,
			ServiceName:     b.Service.Title,
			ServicePrice:    b.Service.Price,
			AppointmentTime: b.AppointmentTime,
			PaymentStatus:   b.PaymentStatus,
		})
	}
	return out
}
