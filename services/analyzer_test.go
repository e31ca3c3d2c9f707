package services

import (
	"strings"
	"testing"

	"github.com/encrypter15/Armitage-Market-Mirror/models"
	"github.com/encrypter15/Armitage-Market-Mirror/utils"
)

func newAnalyzer() *Analyzer {
	return NewAnalyzer(70, utils.NewLogger(false))
}

func sampleBatch() []*models.Listing {
	return []*models.Listing{
		{Site: "eBay", Title: "Armitage Brass Tap 1/2in", Price: 45.99, MatchScore: 86},
		{Site: "Amazon", Title: "Armitage Brass Tap", Price: 60.00, MatchScore: 100},
		{Site: "eBay", Title: "Armitage Brass Tap Deluxe", Price: 120.00, MatchScore: 82},
		{Site: "Amazon", Title: "Garden hose reel", Price: 10.00, MatchScore: 20},
	}
}

func TestAnalyzeEmptyBatch(t *testing.T) {
	if report := newAnalyzer().Analyze(nil, 50); report != nil {
		t.Fatalf("expected nil report for empty batch, got %+v", report)
	}
}

func TestAnalyzeAllBelowCutoff(t *testing.T) {
	batch := []*models.Listing{
		{Site: "eBay", Title: "Unrelated", Price: 5, MatchScore: 70}, // cutoff is strict
		{Site: "Amazon", Title: "Also unrelated", Price: 9, MatchScore: 12},
	}
	if report := newAnalyzer().Analyze(batch, 50); report != nil {
		t.Fatalf("expected nil report when nothing exceeds the cutoff, got %+v", report)
	}
}

func TestAnalyzeFiltersAndSorts(t *testing.T) {
	report := newAnalyzer().Analyze(sampleBatch(), 50)
	if report == nil {
		t.Fatal("expected a report")
	}
	if len(report.Listings) != 3 {
		t.Fatalf("relevant listings: got %d, want 3", len(report.Listings))
	}
	for _, l := range report.Listings {
		if l.MatchScore <= 70 {
			t.Errorf("listing %q with score %d passed the cutoff", l.Title, l.MatchScore)
		}
	}
	for i := 1; i < len(report.Listings); i++ {
		if report.Listings[i-1].Price > report.Listings[i].Price {
			t.Errorf("listings not sorted by ascending price: %v before %v",
				report.Listings[i-1].Price, report.Listings[i].Price)
		}
	}
}

func TestAnalyzePriceInsights(t *testing.T) {
	report := newAnalyzer().Analyze(sampleBatch(), 50)
	if report == nil {
		t.Fatal("expected a report")
	}

	// (45.99 + 60 + 120) / 3
	wantAvg := "Average price: $75.33"
	wantMin := "Lowest price: $45.99"
	if report.Insights[0] != wantAvg {
		t.Errorf("insights[0] = %q; want %q", report.Insights[0], wantAvg)
	}
	if report.Insights[1] != wantMin {
		t.Errorf("insights[1] = %q; want %q", report.Insights[1], wantMin)
	}
}

func TestAnalyzeThresholdAlerts(t *testing.T) {
	report := newAnalyzer().Analyze(sampleBatch(), 50)
	if report == nil {
		t.Fatal("expected a report")
	}

	joined := strings.Join(report.Insights, "\n")
	if !strings.Contains(joined, "Found 1 listings below $50:") {
		t.Errorf("missing threshold alert header in:\n%s", joined)
	}
	if !strings.Contains(joined, "- eBay: Armitage Brass Tap 1/2in ($45.99)") {
		t.Errorf("missing below-threshold listing line in:\n%s", joined)
	}
}

func TestAnalyzeNoAlertsAboveThreshold(t *testing.T) {
	report := newAnalyzer().Analyze(sampleBatch(), 1)
	if report == nil {
		t.Fatal("expected a report")
	}
	for _, line := range report.Insights {
		if strings.Contains(line, "listings below") {
			t.Errorf("unexpected alert line %q with threshold $1", line)
		}
	}
}

func TestTopKeywords(t *testing.T) {
	listings := []*models.Listing{
		{Title: "Armitage Brass Tap"},
		{Title: "Armitage brass tap deluxe"},
		{Title: "brass fitting armitage"},
	}
	got := topKeywords(listings, 5)
	want := []string{"armitage", "brass", "tap", "deluxe", "fitting"}
	if len(got) != len(want) {
		t.Fatalf("topKeywords = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("topKeywords[%d] = %q; want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestTopKeywordsTieBreaksOnFirstSeen(t *testing.T) {
	listings := []*models.Listing{
		{Title: "zeta alpha"},
		{Title: "zeta alpha"},
	}
	got := topKeywords(listings, 2)
	if len(got) != 2 || got[0] != "zeta" || got[1] != "alpha" {
		t.Errorf("tie break should keep first-seen order, got %v", got)
	}
}
