package models

import "time"

// Listing is one product offer observed on a marketplace at a point in time.
// Listings are write-once: a record is either dropped whole at extraction
// (missing title or price text) or fully populated, and is never mutated
// after it has been handed to the store.
type Listing struct {
	// ID is assigned by the store on insert; zero until then.
	ID         int64
	Site       string
	Title      string
	Price      float64
	Seller     string
	Link       string
	MatchScore int
	SearchTerm string
	ScrapedAt  time.Time
}

// AnalysisReport holds the per-run analytics over one scrape batch.
// It is recomputed every run and never persisted.
type AnalysisReport struct {
	// Listings is the relevant subset of the batch, sorted by ascending price.
	Listings []*Listing
	// Insights are the human-readable summary lines, in print order.
	Insights []string
}
