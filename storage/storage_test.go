package storage

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"listing-view/models"
)

func TestReadRecordsFileSearchResponse(t *testing.T) {
	records, err := ReadRecordsFile(filepath.Join("testdata", "search.json"))
	if err != nil {
		t.Fatalf("ReadRecordsFile: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records: got %d, want 2", len(records))
	}

	r := records[0]
	if r.ID != "mGz3rXbQ" || r.RowType != "ad_mpm" {
		t.Errorf("identity fields: got %q / %q", r.ID, r.RowType)
	}
	if r.LocalBusiness == nil || r.LocalBusiness.Quote == nil || *r.LocalBusiness.Quote != "" {
		t.Error("empty quote should decode as present")
	}
	if _, ok := r.Icons["list_badge"]; !ok {
		t.Error("empty list_badge should decode as present")
	}
	if r.ContentAds == nil || len(r.ContentAds.MBAOffers) != 1 || r.ContentAds.MBAOffers[0].ID != "o1" {
		t.Errorf("offers: got %+v", r.ContentAds)
	}
	if _, ok := r.ContentAds.Venue["foodtypes"].([]any); !ok {
		t.Errorf("venue list should decode as []any, got %T", r.ContentAds.Venue["foodtypes"])
	}
	if records[1].Identity == nil || records[1].Identity.Name != "Anna Muster" {
		t.Errorf("identity: got %+v", records[1].Identity)
	}
}

func TestReadRecordsArray(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(` [{"id": "a"}, {"id": "b"}] `))
	if err != nil {
		t.Fatalf("ReadRecords: %v", err)
	}
	if len(records) != 2 || records[1].ID != "b" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestReadRecordsNumericScalars(t *testing.T) {
	tests := []struct {
		name   string
		record string
		check  func(r *models.ListingRecord) bool
	}{
		{"numeric zipcode", `{"id": "b", "addresses": [{"zipcode": 8001, "city": "Zürich"}]}`,
			func(r *models.ListingRecord) bool { return r.Addresses[0].Zipcode == "8001" }},
		{"numeric house number", `{"id": "b", "addresses": [{"street": "Main", "house_number": 12}]}`,
			func(r *models.ListingRecord) bool { return r.Addresses[0].HouseNumber == "12" }},
		{"numeric offer id", `{"id": "b", "content_ads": {"mba_offers": [{"id": 42, "type": "coupon"}]}}`,
			func(r *models.ListingRecord) bool { return r.ContentAds.MBAOffers[0].ID == "42" }},
		{"null zipcode", `{"id": "b", "addresses": [{"zipcode": null}]}`,
			func(r *models.ListingRecord) bool { return r.Addresses[0].Zipcode == "" }},
	}

	for _, tt := range tests {
		records, err := ReadRecords(strings.NewReader(`[{"id": "a"}, ` + tt.record + `]`))
		if err != nil {
			t.Errorf("%s: ReadRecords: %v", tt.name, err)
			continue
		}
		if len(records) != 2 || records[0].ID != "a" {
			t.Errorf("%s: sibling record lost: %+v", tt.name, records)
			continue
		}
		if !tt.check(records[1]) {
			t.Errorf("%s: unexpected decode: %+v", tt.name, records[1])
		}
	}
}

func TestReadRecordsRejectsNonScalarText(t *testing.T) {
	if _, err := ReadRecords(strings.NewReader(`[{"id": "a", "addresses": [{"zipcode": {"x": 1}}]}]`)); err == nil {
		t.Error("object zipcode: expected error")
	}
}

func TestReadRecordsEmptyAndInvalid(t *testing.T) {
	records, err := ReadRecords(strings.NewReader("  "))
	if err != nil || records != nil {
		t.Errorf("empty input: got %v, %v", records, err)
	}

	if _, err := ReadRecords(strings.NewReader(`{"entries": 3}`)); err == nil {
		t.Error("expected error for malformed entries")
	}
	if _, err := ReadRecordsFile(filepath.Join("testdata", "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "views.csv")
	w, err := NewCSVWriter(path)
	if err != nil {
		t.Fatalf("NewCSVWriter: %v", err)
	}

	at := time.Date(2024, time.March, 5, 9, 7, 0, 0, time.UTC)
	err = w.Write([]*models.Summary{
		{ID: "a", Name: "Pizzeria Roma", EntryType: "business", IsAd: true, City: "8001 Zürich",
			Categories: "Restaurant, Pizzeria", Distance: "1.2 km", OfferCount: 1, Latitude: 47.37, Longitude: 8.54, CreatedAt: at},
		{ID: "b", Name: "Anna Muster", EntryType: "person", CreatedAt: at},
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows: got %d, want 3", len(rows))
	}
	if rows[0][0] != "id" || len(rows[0]) != len(csvHeader) {
		t.Errorf("header: got %v", rows[0])
	}
	want := []string{"a", "Pizzeria Roma", "business", "", "true", "", "8001 Zürich", "Restaurant, Pizzeria",
		"", "1.2 km", "1", "47.37", "8.54", "2024-03-05T09:07:00Z"}
	for i := range want {
		if rows[1][i] != want[i] {
			t.Errorf("row 1 column %s: got %q, want %q", csvHeader[i], rows[1][i], want[i])
		}
	}
	if rows[2][11] != "" {
		t.Errorf("missing coordinates should be blank, got %q", rows[2][11])
	}
}
