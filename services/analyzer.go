package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/encrypter15/Armitage-Market-Mirror/models"
	"github.com/encrypter15/Armitage-Market-Mirror/utils"
)

const topKeywordCount = 5

// Analyzer computes per-run insights over the batch of listings scraped in
// that run. It never touches the store; historical listings do not feed into
// the report.
type Analyzer struct {
	cutoff int
	logger *utils.Logger
}

// NewAnalyzer creates an Analyzer using the given relevance cutoff.
func NewAnalyzer(cutoff int, logger *utils.Logger) *Analyzer {
	return &Analyzer{cutoff: cutoff, logger: logger}
}

// Analyze filters the batch down to listings whose match score exceeds the
// relevance cutoff, sorts them by ascending price and derives the insight
// lines: average and lowest price, the below-threshold alert block, and the
// top-keywords line.
//
// It returns nil when there is nothing to report — both for an empty batch
// and for a batch where every listing fell at or below the cutoff. Callers
// present both as "no relevant listings found".
func (a *Analyzer) Analyze(batch []*models.Listing, priceThreshold float64) *models.AnalysisReport {
	if len(batch) == 0 {
		a.logger.Debug("[analyzer] Empty batch, nothing to analyze")
		return nil
	}

	relevant := make([]*models.Listing, 0, len(batch))
	for _, l := range batch {
		if l.MatchScore > a.cutoff {
			relevant = append(relevant, l)
		}
	}
	if len(relevant) == 0 {
		a.logger.Debug("[analyzer] All %d listings at or below cutoff %d", len(batch), a.cutoff)
		return nil
	}

	sort.SliceStable(relevant, func(i, j int) bool {
		return relevant[i].Price < relevant[j].Price
	})

	var total float64
	for _, l := range relevant {
		total += l.Price
	}
	avgPrice := total / float64(len(relevant))
	minPrice := relevant[0].Price

	insights := []string{
		fmt.Sprintf("Average price: $%.2f", avgPrice),
		fmt.Sprintf("Lowest price: $%.2f", minPrice),
	}

	var cheap []*models.Listing
	for _, l := range relevant {
		if l.Price < priceThreshold {
			cheap = append(cheap, l)
		}
	}
	if len(cheap) > 0 {
		insights = append(insights, fmt.Sprintf("Found %d listings below $%g:", len(cheap), priceThreshold))
		for _, l := range cheap {
			insights = append(insights, fmt.Sprintf("- %s: %s ($%.2f)", l.Site, l.Title, l.Price))
		}
	}

	if kw := topKeywords(relevant, topKeywordCount); len(kw) > 0 {
		insights = append(insights, "Top keywords: "+strings.Join(kw, ", "))
	}

	return &models.AnalysisReport{Listings: relevant, Insights: insights}
}

// Print writes the insight lines to stdout.
func (a *Analyzer) Print(report *models.AnalysisReport) {
	fmt.Println("\n=== Insights ===")
	for _, line := range report.Insights {
		fmt.Println(line)
	}
}

// topKeywords returns the n most frequent whitespace-delimited lower-cased
// tokens across the listing titles. Ties break towards the token seen first.
func topKeywords(listings []*models.Listing, n int) []string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for _, l := range listings {
		for _, tok := range strings.Fields(strings.ToLower(l.Title)) {
			if _, ok := counts[tok]; !ok {
				firstSeen[tok] = len(firstSeen)
			}
			counts[tok]++
		}
	}

	tokens := make([]string, 0, len(counts))
	for tok := range counts {
		tokens = append(tokens, tok)
	}
	sort.Slice(tokens, func(i, j int) bool {
		if counts[tokens[i]] != counts[tokens[j]] {
			return counts[tokens[i]] > counts[tokens[j]]
		}
		return firstSeen[tokens[i]] < firstSeen[tokens[j]]
	})

	if len(tokens) > n {
		tokens = tokens[:n]
	}
	return tokens
}
