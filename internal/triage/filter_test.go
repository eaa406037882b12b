package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/treyloggins4-create/tk/internal/domain"
)

func sampleSubmissions() []domain.ContactSubmission {
	return []domain.ContactSubmission{
		{ID: "1", Name: "Alice Johnson", Email: "alice@example.com", Phone: "555-0101", Service: "power-washing", Status: domain.StatusNew},
		{ID: "2", Name: "Bob Smith", Email: "bob@example.com", Phone: "555-0202", Service: "power-washing, sealing", Status: domain.StatusContacted},
		{ID: "3", Name: "Carol Diaz", Email: "carol@other.org", Phone: "555-0303", Service: "leaf-cleanup", Status: domain.StatusQuoted},
		{ID: "4", Name: "Dan Brown", Email: "dan@example.com", Phone: "555-0404", Service: "junk-removal", Status: domain.StatusCompleted},
		{ID: "5", Name: "Eve Adams", Email: "eve@example.com", Phone: "555-0505", Service: "debris-removal", Status: domain.StatusCancelled},
	}
}

func TestFilterAllStatusEmptyTerm(t *testing.T) {
	all := sampleSubmissions()
	got := Filter(all, "", domain.StatusAll)

	assert.Len(t, got, len(all))
	// input order is preserved
	for i := range all {
		assert.Equal(t, all[i].ID, got[i].ID)
	}
}

func TestFilterByStatus(t *testing.T) {
	tests := []struct {
		status  string
		wantIDs []string
	}{
		{domain.StatusNew, []string{"1"}},
		{domain.StatusContacted, []string{"2"}},
		{domain.StatusQuoted, []string{"3"}},
		{domain.StatusCompleted, []string{"4"}},
		{domain.StatusCancelled, []string{"5"}},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			got := Filter(sampleSubmissions(), "", tt.status)
			ids := make([]string, len(got))
			for i, sub := range got {
				ids[i] = sub.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilterByTerm(t *testing.T) {
	all := sampleSubmissions()

	// name match is case-insensitive
	got := Filter(all, "ALICE", domain.StatusAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// email match
	got = Filter(all, "other.org", domain.StatusAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	// service match spans the joined tags
	got = Filter(all, "sealing", domain.StatusAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// phone match is a plain substring
	got = Filter(all, "0404", domain.StatusAll)
	assert.Len(t, got, 1)
	assert.Equal(t, "4", got[0].ID)

	// no match
	got = Filter(all, "zzz", domain.StatusAll)
	assert.Empty(t, got)
}

func TestFilterTermAndStatusCombined(t *testing.T) {
	all := sampleSubmissions()

	// "example.com" matches 1, 2, 4, 5; status narrows it further
	got := Filter(all, "example.com", domain.StatusContacted)
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	got = Filter(all, "example.com", domain.StatusQuoted)
	assert.Empty(t, got)
}

func TestFilterEmptyInput(t *testing.T) {
	got := Filter(nil, "anything", domain.StatusNew)
	assert.Empty(t, got)
}

func TestSummarize(t *testing.T) {
	sum := Summarize(sampleSubmissions())

	assert.Equal(t, 5, sum.Total)
	assert.Equal(t, 1, sum.New)
	// contacted and quoted both count as active
	assert.Equal(t, 2, sum.Active)
	assert.Equal(t, 1, sum.Completed)
}

func TestSummarizeEmpty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}
