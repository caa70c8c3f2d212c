package models

import "time"

// RenderedView is every display projection of one entry, as handed to the
// templating layer and stored alongside the summary row.
type RenderedView struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	EntryType        string                 `json:"entry_type"`
	IsAd             bool                   `json:"is_ad"`
	Target           *Target                `json:"target"`
	Phones           []PhoneView            `json:"phones"`
	Extras           map[string][]ExtraItem `json:"extras"`
	MenuURL          string                 `json:"menu_url,omitempty"`
	Logo             *Logo                  `json:"logo"`
	ListBadge        *string                `json:"list_badge"`
	DetailBadge      *string                `json:"detail_badge"`
	Thumbnail        Thumbnail              `json:"thumbnail"`
	Ratings          any                    `json:"ratings"`
	Booking          *BookingView           `json:"booking"`
	Street           string                 `json:"street"`
	City             string                 `json:"city"`
	POBoxNumber      string                 `json:"pobox_number"`
	POBoxLocation    string                 `json:"pobox_location"`
	FullLocation     string                 `json:"full_location"`
	Categories       string                 `json:"categories"`
	Context          string                 `json:"context"`
	Occupation       string                 `json:"occupation"`
	Distance         string                 `json:"distance"`
	Coords           *Coords                `json:"coords"`
	TransitURL       string                 `json:"transit_url"`
	CarURL           string                 `json:"car_url"`
	AreaMapURL       string                 `json:"area_map_url"`
	Offers           []Offer                `json:"offers"`
	OffersType       string                 `json:"offers_type,omitempty"`
	FoursquareID     *string                `json:"foursquare_id"`
	OpeningHours     []OpeningHoursEntry    `json:"opening_hours"`
	VenueData        []VenueGroup           `json:"venue_data"`
	ShortDescription *string                `json:"short_description"`
	DetailOrder      []string               `json:"detail_order"`
	Images           []string               `json:"images"`
}

// Summary is the flat row written to CSV and PostgreSQL.
type Summary struct {
	ID             string
	Name           string
	EntryType      string
	RowType        string
	IsAd           bool
	Street         string
	City           string
	Categories     string
	Phone          string
	DistanceMeters float64
	Distance       string
	OfferCount     int
	Latitude       float64
	Longitude      float64
	Rendered       *RenderedView
	CreatedAt      time.Time
}

// InsightReport holds the computed analytics over a rendered batch.
type InsightReport struct {
	TotalEntries      int
	Ads               int
	WithOffers        int
	AverageDistanceKm float64
	MinDistanceKm     float64
	MaxDistanceKm     float64
	Nearest           *Summary
	EntriesByType     map[string]int
	EntriesByCity     map[string]int
	TopCategories     []CategoryCount
}

type CategoryCount struct {
	Name  string
	Count int
}
