// Package queue defines message payloads exchanged over the message broker.
package queue

import (
    "time"

    "github.com/iliyamo/cinevision/internal/seed"
)

// CatalogSeededQueue receives one CatalogSeededEvent per catalog startup.
const CatalogSeededQueue = "catalog.seeded"

// CatalogSeededEvent is published after the catalog service finished its
// startup seeding.  It carries the per-collection outcome so operators can
// spot partially seeded collections without reading service logs.
type CatalogSeededEvent struct {
    Service     string                  `json:"service"`
    StartedAt   string                  `json:"started_at"`
    FinishedAt  string                  `json:"finished_at"`
    Failed      int                     `json:"failed"`
    Collections []seed.CollectionResult `json:"collections"`
}

// NewCatalogSeededEvent converts a seeding report into its event form.
func NewCatalogSeededEvent(service string, rep seed.Report) CatalogSeededEvent {
    return CatalogSeededEvent{
        Service:     service,
        StartedAt:   rep.StartedAt.Format(time.RFC3339),
        FinishedAt:  rep.FinishedAt.Format(time.RFC3339),
        Failed:      len(rep.Failed()),
        Collections: rep.Collections,
    }
}
