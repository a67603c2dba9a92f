package server

import (
	"testing"

	"github.com/miladmahdian/professional-signup-hub/server/models"
	"github.com/stretchr/testify/assert"
)

func TestLookupKeyFor(t *testing.T) {
	t.Run("prefers email", func(t *testing.T) {
		params := ProfessionalParams{Email: strPtr("alice@example.com"), Phone: strPtr("555-0001")}

		key, ok := lookupKeyFor(&params)
		assert.True(t, ok)
		assert.Equal(t, lookupKey{Field: "email", Value: "alice@example.com"}, key)
	})

	t.Run("falls back to phone", func(t *testing.T) {
		params := ProfessionalParams{Email: strPtr("  "), Phone: strPtr("555-0001")}

		key, ok := lookupKeyFor(&params)
		assert.True(t, ok)
		assert.Equal(t, lookupKey{Field: "phone", Value: "555-0001"}, key)
	})

	t.Run("missing identity", func(t *testing.T) {
		params := ProfessionalParams{FullName: strPtr("Alice")}

		_, ok := lookupKeyFor(&params)
		assert.False(t, ok)
	})
}

func TestFindMatch(t *testing.T) {
	models.InitializeTestDb()

	professional := &models.Professional{
		FullName: "Alice Johnson",
		Email:    strPtr("alice@example.com"),
		Phone:    strPtr("555-0001"),
		Source:   models.DIRECT_SOURCE,
	}
	assert.Nil(t, models.CreateProfessional(professional))

	t.Run("hit by email", func(t *testing.T) {
		match, err := findMatch(lookupKey{Field: "email", Value: "alice@example.com"})
		assert.Nil(t, err)
		assert.NotNil(t, match)
		assert.Equal(t, professional.ID, match.ID)
	})

	t.Run("lookup is exact-match as stored", func(t *testing.T) {
		match, err := findMatch(lookupKey{Field: "phone", Value: "5550001"})
		assert.Nil(t, err)
		assert.Nil(t, match, "no normalization across phone variants")
	})

	t.Run("miss is not an error", func(t *testing.T) {
		match, err := findMatch(lookupKey{Field: "email", Value: "nobody@example.com"})
		assert.Nil(t, err)
		assert.Nil(t, match)
	})
}
