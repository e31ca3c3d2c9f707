package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/encrypter15/Armitage-Market-Mirror/models"
)

func sampleListings(n int) []*models.Listing {
	listings := make([]*models.Listing, 0, n)
	for i := 0; i < n; i++ {
		listings = append(listings, &models.Listing{
			Site:       "eBay",
			Title:      "Armitage Brass Tap",
			Price:      45.99,
			Seller:     "plumbworld",
			Link:       "https://www.ebay.com/itm/123",
			MatchScore: 86,
			SearchTerm: "Armitage brass tap",
			ScrapedAt:  time.Now().UTC(),
		})
	}
	return listings
}

func TestInsertManyAssignsIncreasingIDs(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.InsertMany(sampleListings(3)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d listings, want 3", len(got))
	}
	for i, l := range got {
		if l.ID != int64(i+1) {
			t.Errorf("listing %d has id %d, want %d", i, l.ID, i+1)
		}
	}
}

func TestReadAllRoundtripsFields(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	in := sampleListings(1)[0]
	if err := store.InsertMany([]*models.Listing{in}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	out := got[0]
	if out.Site != in.Site || out.Title != in.Title || out.Price != in.Price ||
		out.Seller != in.Seller || out.Link != in.Link ||
		out.MatchScore != in.MatchScore || out.SearchTerm != in.SearchTerm {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", out, in)
	}
	if !out.ScrapedAt.Equal(in.ScrapedAt) {
		t.Errorf("ScrapedAt: got %v, want %v", out.ScrapedAt, in.ScrapedAt)
	}
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.InsertMany(sampleListings(2)); err != nil {
		t.Fatalf("first insert: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Second "run" against the same backing file: init must be a no-op and
	// ids must keep climbing from where the first run stopped.
	store, err = NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer store.Close()

	if err := store.InsertMany(sampleListings(2)); err != nil {
		t.Fatalf("second insert: %v", err)
	}

	got, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d listings after reopen, want 4", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].ID <= got[i-1].ID {
			t.Errorf("ids not strictly increasing: %d after %d", got[i].ID, got[i-1].ID)
		}
	}
}

func TestInsertManyEmptyBatch(t *testing.T) {
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.InsertMany(nil); err != nil {
		t.Errorf("empty insert should be a no-op, got %v", err)
	}
	got, err := store.ReadAll()
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("store should be empty, has %d rows", len(got))
	}
}
