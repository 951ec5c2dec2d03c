package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("US number without prefix", func(t *testing.T) {
		got, err := Normalize("(202) 555-0143", "")

		require.NoError(t, err)
		assert.Equal(t, "+12025550143", got)
	})

	t.Run("Already E.164", func(t *testing.T) {
		got, err := Normalize("+12025550143", "")

		require.NoError(t, err)
		assert.Equal(t, "+12025550143", got)
	})

	t.Run("International number with prefix ignores region", func(t *testing.T) {
		got, err := Normalize("+442071838750", "US")

		require.NoError(t, err)
		assert.Equal(t, "+442071838750", got)
	})

	t.Run("Explicit region", func(t *testing.T) {
		got, err := Normalize("020 7183 8750", "GB")

		require.NoError(t, err)
		assert.Equal(t, "+442071838750", got)
	})

	t.Run("Empty input", func(t *testing.T) {
		_, err := Normalize("", "")
		assert.Error(t, err)
	})

	t.Run("Garbage input", func(t *testing.T) {
		_, err := Normalize("not-a-phone", "")
		assert.Error(t, err)
	})

	t.Run("Too short to be valid", func(t *testing.T) {
		_, err := Normalize("12345", "US")
		assert.Error(t, err)
	})
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("+12025550143", ""))
	assert.False(t, IsValid("12345", "US"))
	assert.False(t, IsValid("", ""))
}
