package dto

import "github.com/Ka-few/Beauty-parlor-app/internal/models"

type CustomerDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	IsAdmin bool   `json:"is_admin"`
}

// AuthDTO is returned by register and login.
type AuthDTO struct {
	Customer    CustomerDTO `json:"customer"`
	AccessToken string      `json:"access_token"`
}

func Customer(c *models.Customer) CustomerDTO {
	return CustomerDTO{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		IsAdmin: c.IsAdmin,
	}
}

func Customers(list []models.Customer) []CustomerDTO {
	out := make([]CustomerDTO, 0, len(list))
	for i := range list {
		out = append(out, Customer(&list[i]))
	}
	return out
}
