package services

import (
	"fmt"
	"sort"
	"strings"

	"listing-view/models"
	"listing-view/utils"
)

const topCategoryCount = 5

type InsightService struct {
	logger *utils.Logger
}

func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

func (s *InsightService) Generate(summaries []*models.Summary) *models.InsightReport {
	report := &models.InsightReport{
		EntriesByType: make(map[string]int),
		EntriesByCity: make(map[string]int),
	}

	if len(summaries) == 0 {
		return report
	}

	report.TotalEntries = len(summaries)

	var located []*models.Summary
	categories := make(map[string]int)

	for _, e := range summaries {
		if e.IsAd {
			report.Ads++
		}
		if e.OfferCount > 0 {
			report.WithOffers++
		}
		if e.DistanceMeters > 0 {
			located = append(located, e)
		}
		report.EntriesByType[e.EntryType]++
		if e.City != "" {
			report.EntriesByCity[e.City]++
		}
		for _, name := range strings.Split(e.Categories, ", ") {
			if name != "" {
				categories[name]++
			}
		}
	}

	// Distance stats (only entries with a known distance)
	if len(located) > 0 {
		nearest := located[0]
		maxMeters := located[0].DistanceMeters
		var total float64
		for _, e := range located {
			total += e.DistanceMeters
			if e.DistanceMeters < nearest.DistanceMeters {
				nearest = e
			}
			if e.DistanceMeters > maxMeters {
				maxMeters = e.DistanceMeters
			}
		}
		report.Nearest = nearest
		report.AverageDistanceKm = round2(total / float64(len(located)) / 1000)
		report.MinDistanceKm = round2(nearest.DistanceMeters / 1000)
		report.MaxDistanceKm = round2(maxMeters / 1000)
	}

	for name, count := range categories {
		report.TopCategories = append(report.TopCategories, models.CategoryCount{Name: name, Count: count})
	}
	sort.Slice(report.TopCategories, func(i, j int) bool {
		a, b := report.TopCategories[i], report.TopCategories[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Name < b.Name
	})
	if len(report.TopCategories) > topCategoryCount {
		report.TopCategories = report.TopCategories[:topCategoryCount]
	}

	return report
}

func (s *InsightService) Print(r *models.InsightReport) {
	sep := strings.Repeat("═", 54)
	thin := strings.Repeat("─", 54)

	fmt.Printf("\n\033[1;35m%s\033[0m\n", sep)
	fmt.Printf("\033[1;35m  📇 DIRECTORY RENDER INSIGHTS\033[0m\n")
	fmt.Printf("\033[1;35m%s\033[0m\n\n", sep)

	fmt.Printf("\033[1;33m  Overview\033[0m\n")
	fmt.Printf("  %s\n", thin)
	fmt.Printf("  Entries rendered    : \033[1m%d\033[0m\n", r.TotalEntries)
	fmt.Printf("  Advertisements      : \033[1m%d\033[0m\n", r.Ads)
	fmt.Printf("  Entries with offers : \033[1m%d\033[0m\n", r.WithOffers)
	fmt.Println()

	fmt.Printf("\033[1;33m  Distance\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if r.Nearest != nil {
		fmt.Printf("  Average : \033[1;32m%.2f km\033[0m\n", r.AverageDistanceKm)
		fmt.Printf("  Nearest : \033[1;32m%.2f km\033[0m  %s\n", r.MinDistanceKm, truncate(r.Nearest.Name, 30))
		fmt.Printf("  Farthest: \033[1;32m%.2f km\033[0m\n", r.MaxDistanceKm)
	} else {
		fmt.Printf("  No distance data available\n")
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Top Categories\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.TopCategories) == 0 {
		fmt.Printf("  No categories found\n")
	}
	for i, c := range r.TopCategories {
		fmt.Printf("  \033[1m%d.\033[0m %-40s %d\n", i+1, truncate(c.Name, 38), c.Count)
	}
	fmt.Println()

	fmt.Printf("\033[1;33m  Entries by Type\033[0m\n")
	fmt.Printf("  %s\n", thin)
	printCounts(r.EntriesByType)
	fmt.Println()

	fmt.Printf("\033[1;33m  Entries by City\033[0m\n")
	fmt.Printf("  %s\n", thin)
	if len(r.EntriesByCity) == 0 {
		fmt.Printf("  No address data\n")
	} else {
		printCounts(r.EntriesByCity)
	}

	fmt.Printf("\n\033[1;35m%s\033[0m\n\n", sep)
}

// printCounts prints a bar per key, largest first.
func printCounts(counts map[string]int) {
	type keyCount struct {
		key   string
		count int
	}
	var rows []keyCount
	for k, c := range counts {
		rows = append(rows, keyCount{k, c})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].count != rows[j].count {
			return rows[i].count > rows[j].count
		}
		return rows[i].key < rows[j].key
	})
	for _, row := range rows {
		bar := strings.Repeat("█", row.count)
		fmt.Printf("  %-30s %s (%d)\n", truncate(row.key, 28), bar, row.count)
	}
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
