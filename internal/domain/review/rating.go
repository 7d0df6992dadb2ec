package review

import "github.com/Ka-few/Beauty-parlor-app/internal/httperr"

const (
	MinRating = 1
	MaxRating = 5
)

func ValidateRating(rating *int) error {
	if rating == nil || *rating < MinRating || *rating > MaxRating {
		return httperr.Validation("Rating must be between 1 and 5")
	}
	return nil
}
