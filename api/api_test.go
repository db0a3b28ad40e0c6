package api

import (
	"math"
	"testing"

	"marketboard/internal/util"

	"github.com/stretchr/testify/require"
)

func Test_parseRange(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		start, end, err := parseRange("2023-01-02", "2023-06-15")
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2023, 1, 2), start)
		require.Equal(t, util.NewDate(2023, 6, 15), end)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, _, err := parseRange("02/01/2023", "2023-06-15")
		require.Error(t, err)
	})

	t.Run("rejects inverted ranges", func(t *testing.T) {
		_, _, err := parseRange("2023-06-15", "2023-01-02")
		require.Error(t, err)
	})
}

func Test_formatCoefficient(t *testing.T) {
	t.Run("rounds to two decimals", func(t *testing.T) {
		out := formatCoefficient(0.756)
		require.NotNil(t, out)
		require.Equal(t, "0.76", *out)
	})

	t.Run("NaN becomes null", func(t *testing.T) {
		require.Nil(t, formatCoefficient(math.NaN()))
	})
}
