package kernel_test

import (
	"strings"
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	const checksummed = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"

	t.Run("lowercase input is normalised to checksum form", func(t *testing.T) {
		a, err := kernel.ParseAddress(strings.ToLower(checksummed))
		require.NoError(t, err)
		assert.Equal(t, checksummed, a.String())
	})

	t.Run("surrounding whitespace is ignored", func(t *testing.T) {
		a, err := kernel.ParseAddress("  " + checksummed + "\n")
		require.NoError(t, err)
		assert.Equal(t, checksummed, a.String())
	})

	invalid := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "0x1234"},
		{"not hex", "0xZZZeb6053F3E94C9b9A09f33669435E7Ef1BeAed"},
		{"zero address", "0x0000000000000000000000000000000000000000"},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kernel.ParseAddress(tc.input)
			require.ErrorIs(t, err, errs.ErrInvalidAddress)
		})
	}
}

func TestAddress_IsEqual(t *testing.T) {
	a := kernel.MustParseAddress("0x1111111111111111111111111111111111111111")
	b := kernel.MustParseAddress("0x1111111111111111111111111111111111111111")
	c := kernel.MustParseAddress("0x2222222222222222222222222222222222222222")

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestAddress_ZeroValue(t *testing.T) {
	var a kernel.Address
	assert.True(t, a.IsZero())
	require.ErrorIs(t, a.Validate(), errs.ErrInvalidAddress)
}

func TestMustParseAddress_Panics(t *testing.T) {
	assert.Panics(t, func() { kernel.MustParseAddress("nope") })
}
