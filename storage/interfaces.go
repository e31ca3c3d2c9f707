package storage

import "github.com/encrypter15/Armitage-Market-Mirror/models"

// ListingStore is the durable, append-only home of every listing ever
// scraped. There is no update or delete: listings are observations, not
// mutable entities.
type ListingStore interface {
	InsertMany(listings []*models.Listing) error
	ReadAll() ([]*models.Listing, error)
	Close() error
}

// Exporter serializes the full listing history to a flat file.
type Exporter interface {
	Export(listings []*models.Listing) error
}
