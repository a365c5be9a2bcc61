//go:build unit

package pgconv_test

import (
	"math/big"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/pkg/pgconv"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	tests := []string{"0", "600", "1000.50", "0.01", "123456789.99"}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			d := decimal.RequireFromString(in)

			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))

			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s, got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("null is zero", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("scaled value", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(60000), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "600", got.String())
	})

	t.Run("NaN rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumeric)
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(errs.Wrap(pgx.ErrNoRows, "find reservation")))
	assert.False(t, pgconv.IsNoRows(errs.New("boom")))
}
