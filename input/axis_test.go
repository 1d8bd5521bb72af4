package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHorizontalAxis(t *testing.T) {
	cases := []struct {
		name        string
		left, right bool
		stick       float64
		want        float64
	}{
		{"nothing held", false, false, 0, 0},
		{"left", true, false, 0, -1},
		{"right", false, true, 0, 1},
		{"both cancel", true, true, 0, 0},
		{"stick inside deadzone ignored", false, true, 0.2, 1},
		{"stick full right", false, false, 1, 1},
		{"stick half left rescaled", false, false, -0.625, -0.5},
		{"stick beats keys", true, false, 0.625, 0.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, horizontalAxis(c.left, c.right, c.stick, 0.25), 1e-9)
		})
	}
}
