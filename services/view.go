package services

import (
	"strings"
	"time"

	"listing-view/models"
	"listing-view/utils"
)

const (
	rowTypeAdPrefix  = "ad_"
	rowTypeMBAOnMOF  = "ad_mba_on_mof"
	rowTypeMPM       = "ad_mpm"
	entryTypePOI     = "poi"
	entryTypeOpenPOI = "OpenPlace"
)

// defaultDetailOrder is the order of the detail blocks when the entry does
// not carry its own.
var defaultDetailOrder = []string{
	"offers", "venuerating", "phones", "mobiles", "websites", "emails", "address",
	"foursquare", "categories", "map", "quote", "openinghours", "venuedata", "faxes", "actions",
}

// ImageService builds sized thumbnail URLs.
type ImageService interface {
	Thumbnail(identifier, size string) string
}

// MapsService turns a query fragment into a link to the platform's maps app.
type MapsService interface {
	MapsProviderURL(query string) string
}

// Translator looks up UI strings in the current language.
type Translator interface {
	T(key string) string
	Language() string
}

// ViewDeps are the stateless helpers a ListingView renders with. Unset
// fields fall back to root-relative image URLs, web maps, the built-in
// German strings and time.Now.
type ViewDeps struct {
	Images     ImageService
	Maps       MapsService
	Translator Translator
	Now        func() time.Time
}

// ListingView exposes display-ready projections of one ListingRecord.
// It never modifies the record; offers are copied and given thumbnails once,
// when the view is built. A view is meant for a single render on a single
// goroutine.
type ListingView struct {
	rec        *models.ListingRecord
	images     ImageService
	maps       MapsService
	translator Translator
	now        func() time.Time

	offers []models.Offer
}

// NewListingView wraps rec. A nil rec is treated as an empty record.
func NewListingView(rec *models.ListingRecord, deps ViewDeps) *ListingView {
	if rec == nil {
		rec = &models.ListingRecord{}
	}
	if deps.Images == nil {
		deps.Images = utils.NewImages("")
	}
	if deps.Maps == nil {
		deps.Maps = utils.NewPlatform(utils.PlatformWeb)
	}
	if deps.Translator == nil {
		deps.Translator = utils.NewTranslations("")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	v := &ListingView{
		rec:        rec,
		images:     deps.Images,
		maps:       deps.Maps,
		translator: deps.Translator,
		now:        deps.Now,
	}
	v.offers = v.decorateOffers()
	return v
}

// Record returns the wrapped record.
func (v *ListingView) Record() *models.ListingRecord { return v.rec }

func (v *ListingView) ID() string { return v.rec.ID }

func (v *ListingView) IsAd() bool {
	return strings.HasPrefix(v.rec.RowType, rowTypeAdPrefix)
}

// Target returns nil for organic rows.
func (v *ListingView) Target() *models.Target {
	if !v.IsAd() {
		return nil
	}

	target := &models.Target{ID: v.rec.ID}
	rowType := v.rec.RowType
	if rowType != rowTypeMBAOnMOF && rowType != rowTypeMPM {
		return target
	}

	if cover := v.CoverOffer(); cover != nil {
		id := string(cover.ID)
		target.OfferID = &id
		target.EmbedOffer = rowType == rowTypeMPM
	}
	return target
}

func (v *ListingView) FullName() string {
	if v.rec.Title != "" {
		return v.rec.Title
	}
	if v.rec.Identity != nil {
		return v.rec.Identity.Name
	}
	return ""
}

func (v *ListingView) Context() string {
	return v.rec.Context
}

func (v *ListingView) Occupation() string {
	if v.rec.Business == nil {
		return ""
	}
	return v.rec.Business.Occupation
}

func (v *ListingView) Categories() string {
	if v.rec.Business == nil || v.rec.Business.Categories == nil {
		return ""
	}

	names := make([]string, 0, len(v.rec.Business.Categories))
	for _, c := range v.rec.Business.Categories {
		names = append(names, c.Name)
	}
	return strings.Join(names, ", ")
}

// EntryType is the lower-cased entry type; missing types and open places
// are points of interest.
func (v *ListingView) EntryType() string {
	t := v.rec.EntryType
	if t == "" || t == entryTypeOpenPOI {
		return entryTypePOI
	}
	return strings.ToLower(t)
}

func (v *ListingView) ShortDescription() *string {
	lb := v.rec.LocalBusiness
	if lb == nil || lb.Quote == nil {
		return nil
	}
	quote := *lb.Quote
	return &quote
}

// DetailOrder lists the detail block keys in display order.
func (v *ListingView) DetailOrder() []string {
	lb := v.rec.LocalBusiness
	if lb != nil && lb.DetailOrder != nil {
		return strings.Split(*lb.DetailOrder, ",")
	}
	order := make([]string, len(defaultDetailOrder))
	copy(order, defaultDetailOrder)
	return order
}
