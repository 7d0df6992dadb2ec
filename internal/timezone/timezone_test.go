package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBack(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))

	loc := Location("Mars/Olympus")
	assert.NotNil(t, loc)

	_, offset := NowIn("Mars/Olympus").Zone()
	assert.Equal(t, 3*60*60, offset)
}
