package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildURL(t *testing.T) {
	t.Run("places the token as the state parameter", func(t *testing.T) {
		// when
		url := BuildURL("https://stratus.example.com/plan", "eyJ0b3RhbCI6MX0")

		// then
		assert.Equal(t, "https://stratus.example.com/plan?state=eyJ0b3RhbCI6MX0", url)
	})

	t.Run("round-trips through TokenFromInput", func(t *testing.T) {
		// given
		token, err := Encode(fixRichPlan())
		require.NoError(t, err)

		// when
		url := BuildURL("https://stratus.example.com/plan", token)

		// then
		assert.Equal(t, token, TokenFromInput(url))
	})
}

func TestTokenFromInput(t *testing.T) {
	t.Run("accepts a bare token", func(t *testing.T) {
		assert.Equal(t, "eyJ0b3RhbCI6MX0", TokenFromInput("eyJ0b3RhbCI6MX0"))
	})

	t.Run("strips surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "eyJ0b3RhbCI6MX0", TokenFromInput("  eyJ0b3RhbCI6MX0\n"))
	})

	t.Run("extracts the state parameter from a full URL", func(t *testing.T) {
		assert.Equal(t, "abc123", TokenFromInput("https://stratus.example.com/plan?state=abc123"))
	})

	t.Run("passes through a URL without a state parameter", func(t *testing.T) {
		in := "https://stratus.example.com/plan"
		assert.Equal(t, in, TokenFromInput(in))
	})
}
