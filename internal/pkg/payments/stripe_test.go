package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	cases := []struct {
		price float64
		want  int64
	}{
		{19.99, 1999},
		{0.01, 1},
		{100, 10000},
		{49.5, 4950},
		{0.1 + 0.2, 30}, // binary float artifacts must not leak into the amount
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, MinorUnits(tc.price), "price %v", tc.price)
	}
}
