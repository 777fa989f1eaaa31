package kernel_test

import (
	"testing"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates a valid address", func(t *testing.T) {
		addr, err := kernel.NewAddress("01001000", "São Paulo", "SP")

		require.NoError(t, err)
		assert.NoError(t, addr.Validate())
		assert.Equal(t, "01001000", addr.CEP())
		assert.Equal(t, "São Paulo", addr.City())
		assert.Equal(t, "SP", addr.Region())
	})

	t.Run("strips the dash from the CEP", func(t *testing.T) {
		addr, err := kernel.NewAddress("69900-062", "Rio Branco", "AC")

		require.NoError(t, err)
		assert.Equal(t, "69900062", addr.CEP())
	})

	t.Run("normalizes the region to upper case", func(t *testing.T) {
		addr, err := kernel.NewAddress("69900062", "Rio Branco", "ac")

		require.NoError(t, err)
		assert.Equal(t, "AC", addr.Region())
	})

	testCases := []struct {
		name   string
		cep    string
		city   string
		region string
	}{
		{"cep too short", "0100100", "São Paulo", "SP"},
		{"cep with letters", "01001abc", "São Paulo", "SP"},
		{"empty cep", "", "São Paulo", "SP"},
		{"empty city", "01001000", "", "SP"},
		{"empty region", "01001000", "São Paulo", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.NewAddress(tc.cep, tc.city, tc.region)
			require.Error(t, err)
		})
	}
}

func TestAddress_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var addr kernel.Address

		err := addr.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a, err := kernel.NewAddress("01001000", "São Paulo", "SP")
	require.NoError(t, err)
	b, err := kernel.NewAddress("01001-000", "São Paulo", "SP")
	require.NoError(t, err)
	c, err := kernel.NewAddress("69900062", "Rio Branco", "AC")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestAddress_String(t *testing.T) {
	addr, err := kernel.NewAddress("01001000", "São Paulo", "SP")
	require.NoError(t, err)

	assert.Equal(t, "São Paulo/SP (01001000)", addr.String())
}
