package amazon

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

const (
	siteName = "Amazon"
	baseURL  = "https://www.amazon.com"
)

// Scraper extracts listings from Amazon search result pages.
type Scraper struct {
	cfg     *config.Config
	fetcher scraper.PageFetcher
	logger  *utils.Logger
}

// New creates a ready-to-use Amazon Scraper.
func New(cfg *config.Config, fetcher scraper.PageFetcher, logger *utils.Logger) *Scraper {
	return &Scraper{cfg: cfg, fetcher: fetcher, logger: logger}
}

// Name returns the marketplace name as recorded on listings.
func (s *Scraper) Name() string { return siteName }

// Scrape fetches the search results page for term and extracts one listing
// per result card. Amazon serves relative result links, so links are
// resolved against the site root. Third-party seller text is often missing
// from the card; such listings are attributed to "Amazon".
func (s *Scraper) Scrape(term string) ([]*models.Listing, error) {
	pageURL := fmt.Sprintf(s.cfg.AmazonSearchURL, url.QueryEscape(term))

	html, err := s.fetcher.Fetch(pageURL)
	if err != nil {
		return nil, fmt.Errorf("amazon: fetch: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("amazon: parse: %w", err)
	}

	var listings []*models.Listing
	doc.Find(".s-result-item").Each(func(_ int, item *goquery.Selection) {
		title := scraper.NodeText(item, "h2 a span")
		priceText := scraper.NodeText(item, ".a-price .a-offscreen")
		if title == "" || priceText == "" {
			s.logger.Debug("[amazon] Skipping candidate with missing title or price")
			return
		}

		seller := scraper.NodeText(item, ".a-size-base")
		if seller == "" {
			seller = siteName
		}

		listings = append(listings, &models.Listing{
			Site:       siteName,
			Title:      title,
			Price:      services.ParsePrice(priceText),
			Seller:     seller,
			Link:       resolveLink(scraper.NodeAttr(item, "h2 a", "href")),
			MatchScore: services.MatchScore(title, term),
			SearchTerm: term,
			ScrapedAt:  time.Now(),
		})
	})

	s.logger.Info("[amazon] Extracted %d listings for %q", len(listings), term)
	return listings, nil
}

// resolveLink turns a relative result link into an absolute URL. Absent
// links stay empty.
func resolveLink(href string) string {
	if href == "" || strings.HasPrefix(href, "http") {
		return href
	}
	if !strings.HasPrefix(href, "/") {
		href = "/" + href
	}
	return baseURL + href
}
