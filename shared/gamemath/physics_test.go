package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegrateGravity(t *testing.T) {
	speedY, dy := IntegrateGravity(0, 100, 0.5)
	assert.Equal(t, 50.0, speedY)
	assert.Equal(t, 25.0, dy, "displacement uses the updated velocity")

	speedY, dy = IntegrateGravity(-40, 100, 0)
	assert.Equal(t, -40.0, speedY)
	assert.Equal(t, 0.0, dy)
}

func TestHorizontalDirection(t *testing.T) {
	assert.Equal(t, 0.0, HorizontalDirection(false, false))
	assert.Equal(t, -1.0, HorizontalDirection(true, false))
	assert.Equal(t, 1.0, HorizontalDirection(false, true))
	assert.Equal(t, 0.0, HorizontalDirection(true, true))
}

func TestHorizontalDisplacement(t *testing.T) {
	assert.Equal(t, 0.0, HorizontalDisplacement(0, 500, 1))
	assert.InDelta(t, -5.0, HorizontalDisplacement(-1, 500, 0.01), 1e-9)
	assert.InDelta(t, 5.0, HorizontalDisplacement(1, 500, 0.01), 1e-9)
}
