package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(value string) *string {
	return &value
}

func TestCreateProfessional(t *testing.T) {
	InitializeTestDb()

	professional := &Professional{
		FullName: "Alice Johnson",
		Email:    strPtr("alice@example.com"),
		Phone:    strPtr("555-0001"),
		Source:   DIRECT_SOURCE,
	}

	err := CreateProfessional(professional)
	assert.Nil(t, err)
	assert.NotZero(t, professional.ID, "Expected store to assign an id")
	assert.False(t, professional.CreatedAt.IsZero(), "Expected store to stamp created_at")
	assert.Equal(t, "", professional.CompanyName)
	assert.Equal(t, "", professional.JobTitle)
}

func TestUniqueConstraints(t *testing.T) {
	InitializeTestDb()

	err := CreateProfessional(&Professional{
		FullName: "Alice Johnson",
		Email:    strPtr("alice@example.com"),
		Phone:    strPtr("555-0001"),
		Source:   DIRECT_SOURCE,
	})
	assert.Nil(t, err)

	t.Run("duplicate email is rejected", func(t *testing.T) {
		err := CreateProfessional(&Professional{
			FullName: "Other Alice",
			Email:    strPtr("alice@example.com"),
			Phone:    strPtr("555-0002"),
			Source:   PARTNER_SOURCE,
		})
		assert.True(t, IsUniqueConstraintError(err), "expected unique constraint error, got: %v", err)
	})

	t.Run("duplicate phone is rejected", func(t *testing.T) {
		err := CreateProfessional(&Professional{
			FullName: "Other Alice",
			Email:    strPtr("other@example.com"),
			Phone:    strPtr("555-0001"),
			Source:   PARTNER_SOURCE,
		})
		assert.True(t, IsUniqueConstraintError(err), "expected unique constraint error, got: %v", err)
	})

	t.Run("absent emails never collide", func(t *testing.T) {
		for _, phone := range []string{"555-0003", "555-0004"} {
			err := CreateProfessional(&Professional{
				FullName: "Phone Only",
				Phone:    strPtr(phone),
				Source:   INTERNAL_SOURCE,
			})
			assert.Nil(t, err)
		}
	})
}

func TestAllProfessionals(t *testing.T) {
	InitializeTestDb()

	seed := []Professional{
		{FullName: "First", Phone: strPtr("555-0001"), Source: DIRECT_SOURCE},
		{FullName: "Second", Phone: strPtr("555-0002"), Source: PARTNER_SOURCE},
		{FullName: "Third", Phone: strPtr("555-0003"), Source: PARTNER_SOURCE},
	}
	for i := range seed {
		assert.Nil(t, CreateProfessional(&seed[i]))
	}

	t.Run("returns everything newest-first", func(t *testing.T) {
		professionals, err := AllProfessionals("")
		assert.Nil(t, err)
		assert.Len(t, professionals, 3)
		assert.Equal(t, "Third", professionals[0].FullName)
		assert.Equal(t, "First", professionals[2].FullName)
	})

	t.Run("narrows by source", func(t *testing.T) {
		professionals, err := AllProfessionals(PARTNER_SOURCE)
		assert.Nil(t, err)
		assert.Len(t, professionals, 2)
		for _, professional := range professionals {
			assert.Equal(t, PARTNER_SOURCE, professional.Source)
		}
	})

	t.Run("unknown source matches nothing", func(t *testing.T) {
		professionals, err := AllProfessionals("bogus")
		assert.Nil(t, err)
		assert.Empty(t, professionals)
	})
}

func TestUpdateProfessional(t *testing.T) {
	InitializeTestDb()

	professional := &Professional{
		FullName: "Alice Johnson",
		Email:    strPtr("alice@example.com"),
		Phone:    strPtr("555-0001"),
		JobTitle: "Engineer",
		Source:   DIRECT_SOURCE,
	}
	assert.Nil(t, CreateProfessional(professional))
	createdAt := professional.CreatedAt

	err := professional.Update(map[string]interface{}{
		"full_name":    "Alice J.",
		"company_name": "Acme Corp",
	})
	assert.Nil(t, err)
	assert.Nil(t, professional.Reload())

	assert.Equal(t, "Alice J.", professional.FullName)
	assert.Equal(t, "Acme Corp", professional.CompanyName)
	assert.Equal(t, "Engineer", professional.JobTitle, "Fields absent from the update should be untouched")
	assert.True(t, createdAt.Equal(professional.CreatedAt), "created_at is assigned once & never mutated")

	t.Run("update cannot collide with another record's phone", func(t *testing.T) {
		other := &Professional{FullName: "Bob", Phone: strPtr("555-0002"), Source: INTERNAL_SOURCE}
		assert.Nil(t, CreateProfessional(other))

		err := professional.Update(map[string]interface{}{"phone": "555-0002"})
		assert.True(t, IsUniqueConstraintError(err), "expected unique constraint error, got: %v", err)
	})
}
