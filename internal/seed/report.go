package seed

import "time"

// Outcome is what happened to one collection during a seeding run.
type Outcome string

const (
	OutcomeSeeded            Outcome = "seeded"             // collection was empty and received its data set
	OutcomeSkipped           Outcome = "skipped"            // collection already had rows
	OutcomeMissingDependency Outcome = "missing_dependency" // a parent collection was empty
	OutcomeFailed            Outcome = "failed"             // an error interrupted the collection
)

// CollectionResult reports one collection of a catalog run.  Inserted counts
// the rows written before a failure too, whether it was an error or a
// panic; they are kept.
type CollectionResult struct {
	Name     string  `json:"name"`
	Outcome  Outcome `json:"outcome"`
	Inserted int     `json:"inserted"`
	Error    string  `json:"error,omitempty"`
	Count    int64   `json:"count"` // rows present after the run
}

// Report is the structured result of CatalogSeeder.Run.
type Report struct {
	StartedAt   time.Time          `json:"started_at"`
	FinishedAt  time.Time          `json:"finished_at"`
	Collections []CollectionResult `json:"collections"`
}

// Result returns the entry for the named collection.
func (r Report) Result(name string) (CollectionResult, bool) {
	for _, c := range r.Collections {
		if c.Name == name {
			return c, true
		}
	}
	return CollectionResult{}, false
}

// Failed returns the collections whose outcome is OutcomeFailed.
func (r Report) Failed() []CollectionResult {
	var out []CollectionResult
	for _, c := range r.Collections {
		if c.Outcome == OutcomeFailed {
			out = append(out, c)
		}
	}
	return out
}
