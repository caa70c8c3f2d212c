package services

import (
	"math"
	"regexp"
	"strings"

	"listing-view/models"
)

const (
	thumbnailSize      = "64x64"
	offerThumbnailSize = "100x100"
	offerSmallSize     = "64x42"
	thumbnailTypePhoto = "photo"
)

var httpURLRegexp = regexp.MustCompile(`(?i)^https?://`)

// venueOrder is the display order of the venue data groups.
var venueOrder = []string{"foodtypes", "ambiance", "awards", "geo", "services", "pricelevel"}

func (v *ListingView) Logo() *models.Logo {
	icons := v.rec.Icons
	src := icons["primary"]
	if src == "" {
		src = icons["logo"]
	}
	if src == "" {
		return nil
	}

	logo := &models.Logo{Src: src}
	if ads := v.rec.ContentAds; ads != nil && ads.Logo != nil && ads.Logo.URL != "" {
		logo.URL = ads.Logo.URL
	}
	return logo
}

func (v *ListingView) ListBadge() *string   { return v.icon("list_badge") }
func (v *ListingView) DetailBadge() *string { return v.icon("detail_badge") }

// icon reports a key that is present even when its value is empty.
func (v *ListingView) icon(name string) *string {
	if src, ok := v.rec.Icons[name]; ok {
		return &src
	}
	return nil
}

// Thumbnail returns the zero Thumbnail unless both a thumbnail and its type
// are set. Photos go through the image service.
func (v *ListingView) Thumbnail() models.Thumbnail {
	src, kind := v.rec.Icons["thumbnail"], v.rec.Icons["thumbnail_type"]
	if src == "" || kind == "" {
		return models.Thumbnail{}
	}
	if kind == thumbnailTypePhoto {
		src = v.images.Thumbnail(src, thumbnailSize)
	}
	return models.Thumbnail{Src: src, Type: kind}
}

// Ratings passes a set upstream ratings block through untouched.
func (v *ListingView) Ratings() any {
	if v.rec.ContentAds == nil || !truthy(v.rec.ContentAds.Ratings) {
		return nil
	}
	return v.rec.ContentAds.Ratings
}

// Booking routes web booking links through the in-app booking page.
func (v *ListingView) Booking() *models.BookingView {
	b := v.rec.Booking
	if b == nil {
		return nil
	}

	link := b.URI
	if httpURLRegexp.MatchString(b.URI) {
		link = "#d/" + v.rec.ID + "/localina"
	}
	return &models.BookingView{Label: b.Label, ActionURL: b.URI, URL: link}
}

func (v *ListingView) decorateOffers() []models.Offer {
	ads := v.rec.ContentAds
	if ads == nil || ads.MBAOffers == nil {
		return nil
	}

	small := v.rec.RowType == rowTypeMPM
	offers := make([]models.Offer, len(ads.MBAOffers))
	for i, o := range ads.MBAOffers {
		o.Thumbnail = v.images.Thumbnail(o.Photo, offerThumbnailSize)
		if small {
			o.SmallThumbnail = v.images.Thumbnail(o.Photo, offerSmallSize)
		}
		offers[i] = o
	}
	return offers
}

// Offers returns the entry's offers with thumbnails, or nil when the entry
// has no offer block.
func (v *ListingView) Offers() []models.Offer {
	return v.offers
}

// Offer finds an offer by id, searching from the last one.
func (v *ListingView) Offer(id string) *models.Offer {
	for i := len(v.offers) - 1; i >= 0; i-- {
		if string(v.offers[i].ID) == id {
			return &v.offers[i]
		}
	}
	return nil
}

// HasOffers reports whether the entry carries an offer block, even an
// empty one.
func (v *ListingView) HasOffers() bool {
	return v.offers != nil
}

func (v *ListingView) OffersType() string {
	if cover := v.CoverOffer(); cover != nil {
		return cover.Type
	}
	return ""
}

func (v *ListingView) CoverOffer() *models.Offer {
	if len(v.offers) == 0 {
		return nil
	}
	return &v.offers[0]
}

func (v *ListingView) FoursquareVenueID() *string {
	ads := v.rec.ContentAds
	if ads == nil || ads.Foursquare == nil {
		return nil
	}
	id := ads.Foursquare.ID
	return &id
}

// OpeningHours returns the structured day groups followed by free-text
// rows. It is nil when the entry has neither.
func (v *ListingView) OpeningHours() []models.OpeningHoursEntry {
	ads := v.rec.ContentAds
	if ads == nil || (ads.OpeningHoursGroups == nil && (ads.OpeningHours == nil || ads.OpeningHours.Rows == nil)) {
		return nil
	}

	entries := make([]models.OpeningHoursEntry, 0, len(ads.OpeningHoursGroups))
	for _, g := range ads.OpeningHoursGroups {
		isOpen := !g.IsClosed
		subtitle := strings.Join(g.Times, ", ")
		if g.IsClosed {
			subtitle = v.translator.T("opening_hours_closed")
		}
		entries = append(entries, models.OpeningHoursEntry{Text: g.Days, Subtitle: subtitle, IsOpen: &isOpen})
	}

	if ads.OpeningHours != nil {
		for _, row := range ads.OpeningHours.Rows {
			if row.Type == "extra" {
				entries = append(entries, models.OpeningHoursEntry{Text: row.Text})
			}
		}
	}
	return entries
}

// VenueData returns one group per venue attribute that is set, in fixed
// order. Scalar values become single-item groups.
func (v *ListingView) VenueData() []models.VenueGroup {
	ads := v.rec.ContentAds
	if ads == nil || ads.Venue == nil {
		return nil
	}

	groups := make([]models.VenueGroup, 0, len(venueOrder))
	for _, key := range venueOrder {
		value, ok := ads.Venue[key]
		if !ok || !truthy(value) {
			continue
		}

		items, isList := value.([]any)
		if !isList {
			items = []any{value}
		}
		groups = append(groups, models.VenueGroup{Key: key, Items: items})
	}
	return groups
}

func (v *ListingView) Images() []string {
	ads := v.rec.ContentAds
	if ads == nil || ads.Images == nil {
		return nil
	}

	urls := make([]string, 0, len(ads.Images))
	for _, img := range ads.Images {
		urls = append(urls, img.URL)
	}
	return urls
}

// truthy follows the upstream notion of an unset value: nil, false, zero,
// NaN and "" are unset; empty lists and objects are set.
func truthy(value any) bool {
	switch t := value.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case int:
		return t != 0
	default:
		return true
	}
}
