package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRating(t *testing.T) {
	for _, r := range []int{1, 3, 5} {
		r := r
		assert.NoError(t, ValidateRating(&r))
	}
	for _, r := range []int{0, 6, -1} {
		r := r
		assert.Error(t, ValidateRating(&r))
	}
	assert.Error(t, ValidateRating(nil))
}
