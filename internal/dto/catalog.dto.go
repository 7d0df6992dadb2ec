package dto

import "github.com/Ka-few/Beauty-parlor-app/internal/models"

// ServiceDTO embeds the stylists offering the service. Nested stylists do
// not carry their own service lists.
type ServiceDTO struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	ImageURL    string           `json:"image_url"`
	Stylists    []StylistSummary `json:"stylists"`
}

type ServiceSummary struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
}

type StylistDTO struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	Bio      string           `json:"bio"`
	Services []ServiceSummary `json:"services"`
}

type StylistSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Bio  string `json:"bio"`
}

func Service(s *models.Service) ServiceDTO {
	stylists := make([]StylistSummary, 0, len(s.Stylists))
	for _, st := range s.Stylists {
		stylists = append(stylists, StylistSummary{ID: st.ID, Name: st.Name, Bio: st.Bio})
	}
	return ServiceDTO{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
		Stylists:    stylists,
	}
}

func Services(list []models.Service) []ServiceDTO {
	out := make([]ServiceDTO, 0, len(list))
	for i := range list {
		out = append(out, Service(&list[i]))
	}
	return out
}

func Stylist(s *models.Stylist) StylistDTO {
	services := make([]ServiceSummary, 0, len(s.Services))
	for _, sv := range s.Services {
		services = append(services, ServiceSummary{
			ID:          sv.ID,
			Title:       sv.Title,
			Description: sv.Description,
			Price:       sv.Price,
			ImageURL:    sv.ImageURL,
		})
	}
	return StylistDTO{
		ID:       s.ID,
		Name:     s.Name,
		Bio:      s.Bio,
		Services: services,
	}
}

func Stylists(list []models.Stylist) []StylistDTO {
	out := make([]StylistDTO, 0, len(list))
	for i := range list {
		out = append(out, Stylist(&list[i]))
	}
	return out
}
