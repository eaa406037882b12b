package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses() {
		assert.True(t, ValidStatus(s), s)
	}
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
	// the filter sentinel is not a storable status
	assert.False(t, ValidStatus(StatusAll))
}

func TestJoinServices(t *testing.T) {
	assert.Equal(t, "power-washing", JoinServices([]string{"power-washing"}))
	assert.Equal(t, "power-washing, sealing", JoinServices([]string{"power-washing", "sealing"}))
	assert.Equal(t, "", JoinServices(nil))
}

func TestBeforeCreateDefaults(t *testing.T) {
	sub := &ContactSubmission{Name: "Alice", Email: "alice@example.com", Phone: "555-0101", Service: "sealing"}

	require.NoError(t, sub.BeforeCreate(nil))

	assert.NotEmpty(t, sub.ID)
	assert.Equal(t, StatusNew, sub.Status)
	assert.False(t, sub.CreatedAt.IsZero())
}

func TestBeforeCreatePreservesExplicitValues(t *testing.T) {
	sub := &ContactSubmission{ID: "fixed-id", Status: StatusContacted}

	require.NoError(t, sub.BeforeCreate(nil))

	assert.Equal(t, "fixed-id", sub.ID)
	assert.Equal(t, StatusContacted, sub.Status)
}
