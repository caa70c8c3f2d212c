package services

import (
	"testing"

	"listing-view/models"
)

func sampleSummaries() []*models.Summary {
	return []*models.Summary{
		{ID: "1", Name: "Pizzeria Roma", EntryType: "business", IsAd: true, OfferCount: 2, City: "8001 Zürich", Categories: "Restaurant, Pizzeria", DistanceMeters: 1200},
		{ID: "2", Name: "Café Central", EntryType: "business", City: "8001 Zürich", Categories: "Restaurant", DistanceMeters: 300},
		{ID: "3", Name: "Anna Muster", EntryType: "person", City: "3011 Bern", DistanceMeters: 4500},
		{ID: "4", Name: "Bahnhof", EntryType: "poi", IsAd: true, Categories: "Station"},
	}
}

func TestInsightCounts(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleSummaries())
	if r.TotalEntries != 4 {
		t.Errorf("TotalEntries: got %d, want 4", r.TotalEntries)
	}
	if r.Ads != 2 {
		t.Errorf("Ads: got %d, want 2", r.Ads)
	}
	if r.WithOffers != 1 {
		t.Errorf("WithOffers: got %d, want 1", r.WithOffers)
	}
}

func TestInsightDistances(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleSummaries())
	if r.AverageDistanceKm != 2 {
		t.Errorf("AverageDistanceKm: got %.2f, want 2", r.AverageDistanceKm)
	}
	if r.MinDistanceKm != 0.3 {
		t.Errorf("MinDistanceKm: got %.2f, want 0.3", r.MinDistanceKm)
	}
	if r.MaxDistanceKm != 4.5 {
		t.Errorf("MaxDistanceKm: got %.2f, want 4.5", r.MaxDistanceKm)
	}
	if r.Nearest == nil || r.Nearest.Name != "Café Central" {
		t.Errorf("Nearest: got %+v, want Café Central", r.Nearest)
	}
}

func TestInsightGrouping(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleSummaries())
	if r.EntriesByType["business"] != 2 {
		t.Errorf("business count: got %d, want 2", r.EntriesByType["business"])
	}
	if r.EntriesByCity["8001 Zürich"] != 2 {
		t.Errorf("Zürich count: got %d, want 2", r.EntriesByCity["8001 Zürich"])
	}
	if len(r.EntriesByCity) != 2 {
		t.Errorf("cities: got %d, want 2", len(r.EntriesByCity))
	}
}

func TestInsightTopCategories(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(sampleSummaries())
	if len(r.TopCategories) != 3 {
		t.Fatalf("TopCategories len: got %d, want 3", len(r.TopCategories))
	}
	if r.TopCategories[0] != (models.CategoryCount{Name: "Restaurant", Count: 2}) {
		t.Errorf("TopCategories[0]: got %+v", r.TopCategories[0])
	}
	if r.TopCategories[1].Name != "Pizzeria" {
		t.Errorf("ties sort by name: got %q", r.TopCategories[1].Name)
	}
}

func TestInsightEmptyInput(t *testing.T) {
	svc := NewInsightService(newTestLogger())
	r := svc.Generate(nil)
	if r.TotalEntries != 0 || r.Nearest != nil {
		t.Errorf("expected empty report for empty input")
	}
}
