package scraper

import "github.com/encrypter15/Armitage-Market-Mirror/models"

// Source extracts listings for a search term from one marketplace.
// Scrape reports fetch and parse failures through its error; it never
// returns partially valid listings alongside an error. The pipeline driver
// treats a failed source as an empty result and carries on with the rest.
type Source interface {
	Name() string
	Scrape(term string) ([]*models.Listing, error)
}
