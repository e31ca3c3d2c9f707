package ebay

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/encrypter15/Armitage-Market-Mirror/config"
	"github.com/encrypter15/Armitage-Market-Mirror/models"
	"github.com/encrypter15/Armitage-Market-Mirror/scraper"
	"github.com/encrypter15/Armitage-Market-Mirror/services"
	"github.com/encrypter15/Armitage-Market-Mirror/utils"
)

const siteName = "eBay"

// Scraper extracts listings from eBay search result pages.
type Scraper struct {
	cfg     *config.Config
	fetcher scraper.PageFetcher
	logger  *utils.Logger
}

// New creates a ready-to-use eBay Scraper.
func New(cfg *config.Config, fetcher scraper.PageFetcher, logger *utils.Logger) *Scraper {
	return &Scraper{cfg: cfg, fetcher: fetcher, logger: logger}
}

// Name returns the marketplace name as recorded on listings.
func (s *Scraper) Name() string { return siteName }

// Scrape fetches the search results page for term and extracts one listing
// per result card. Candidates with no title or no price text are dropped
// whole; an unparseable price on an otherwise valid candidate becomes 0.
func (s *Scraper) Scrape(term string) ([]*models.Listing, error) {
	pageURL := fmt.Sprintf(s.cfg.EbaySearchURL, url.QueryEscape(term))

	html, err := s.fetcher.Fetch(pageURL)
	if err != nil {
		return nil, fmt.Errorf("ebay: fetch: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("ebay: parse: %w", err)
	}

	var listings []*models.Listing
	doc.Find(".s-item").Each(func(_ int, item *goquery.Selection) {
		title := scraper.NodeText(item, ".s-item__title")
		priceText := scraper.NodeText(item, ".s-item__price")
		if title == "" || priceText == "" {
			s.logger.Debug("[ebay] Skipping candidate with missing title or price")
			return
		}

		listings = append(listings, &models.Listing{
			Site:       siteName,
			Title:      title,
			Price:      services.ParsePrice(priceText),
			Seller:     scraper.NodeText(item, ".s-item__seller-info-text"),
			Link:       scraper.NodeAttr(item, ".s-item__link", "href"),
			MatchScore: services.MatchScore(title, term),
			SearchTerm: term,
			ScrapedAt:  time.Now(),
		})
	})

	s.logger.Info("[ebay] Extracted %d listings for %q", len(listings), term)
	return listings, nil
}
