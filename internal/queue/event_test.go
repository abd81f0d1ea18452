package queue

import (
    "encoding/json"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/cinevision/internal/seed"
)

func TestNewCatalogSeededEvent(t *testing.T) {
    start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
    rep := seed.Report{
        StartedAt:  start,
        FinishedAt: start.Add(2 * time.Second),
        Collections: []seed.CollectionResult{
            {Name: seed.CollectionCategories, Outcome: seed.OutcomeSeeded, Inserted: 10, Count: 10},
            {Name: seed.CollectionActors, Outcome: seed.OutcomeFailed, Inserted: 3, Error: "boom", Count: 3},
        },
    }

    ev := NewCatalogSeededEvent("movie-service", rep)
    assert.Equal(t, "2026-01-02T03:04:05Z", ev.StartedAt)
    assert.Equal(t, "2026-01-02T03:04:07Z", ev.FinishedAt)
    assert.Equal(t, 1, ev.Failed)

    b, err := json.Marshal(ev)
    require.NoError(t, err)
    assert.Contains(t, string(b), `"outcome":"failed"`)
    assert.Contains(t, string(b), `"service":"movie-service"`)
}
