package dto

import (
	"time"

	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

type ReviewDTO struct {
	ID           uint      `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
	CustomerID   uint      `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	StylistID    uint      `json:"stylist_id"`
}

func Review(r *models.Review) ReviewDTO {
	return ReviewDTO{
		ID:           r.ID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
		CustomerID:   r.CustomerID,
		CustomerName: r.Customer.Name,
		StylistID:    r.StylistID,
	}
}

func Reviews(list []models.Review) []ReviewDTO {
	out := make([]ReviewDTO, 0, len(list))
	for i := range list {
		out = append(out, Review(&list[i]))
	}
	return out
}
