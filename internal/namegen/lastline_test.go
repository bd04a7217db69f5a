package namegen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastLineStrategy(t *testing.T) {
	s := NewLastLineStrategy(nil)

	base, err := s.DeriveName(context.Background(), "Header\n\nBody text here\n  Acme Project Closing Report  \n\n")
	require.NoError(t, err)
	assert.Equal(t, "Acme Project Closing Report", base)
}

func TestLastLineStrategyIgnoresEverythingElse(t *testing.T) {
	s := NewLastLineStrategy(nil)

	base, err := s.DeriveName(context.Background(), "Invoice #A1234 dated 2023-01-02\nfooter line")
	require.NoError(t, err)
	assert.Equal(t, "footer line", base)
}

func TestLastLineStrategyNoName(t *testing.T) {
	s := NewLastLineStrategy(nil)

	for _, text := range []string{"", "\n\n\n", "   \n\t\n "} {
		_, err := s.DeriveName(context.Background(), text)
		assert.ErrorIs(t, err, ErrNoName)
	}

	// A final line made only of invalid characters sanitizes to nothing.
	_, err := s.DeriveName(context.Background(), "real title\n???")
	assert.ErrorIs(t, err, ErrNoName)
}
