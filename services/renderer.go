package services

import (
	"errors"
	"time"

	"listing-view/models"
	"listing-view/utils"
)

// Renderer turns cleaned records into rendered views and summary rows.
type Renderer struct {
	logger          *utils.Logger
	deps            ViewDeps
	currentLocation string
}

// NewRenderer creates a Renderer. currentLocation is the start point used
// for directions links and may be empty.
func NewRenderer(logger *utils.Logger, deps ViewDeps, currentLocation string) *Renderer {
	return &Renderer{logger: logger, deps: deps, currentLocation: currentLocation}
}

// Render builds the full display projection of rec.
func (r *Renderer) Render(rec *models.ListingRecord) *models.RenderedView {
	v := NewListingView(rec, r.deps)

	out := &models.RenderedView{
		ID:               v.ID(),
		Name:             v.FullName(),
		EntryType:        v.EntryType(),
		IsAd:             v.IsAd(),
		Target:           v.Target(),
		Phones:           v.Phones(),
		Extras:           r.extras(v),
		Logo:             v.Logo(),
		ListBadge:        v.ListBadge(),
		DetailBadge:      v.DetailBadge(),
		Thumbnail:        v.Thumbnail(),
		Ratings:          v.Ratings(),
		Booking:          v.Booking(),
		Street:           v.Street(),
		City:             v.City(),
		POBoxNumber:      v.POBoxNumber(),
		POBoxLocation:    v.POBoxLocation(),
		FullLocation:     v.UnescapedFullLocation(),
		Categories:       v.Categories(),
		Context:          v.Context(),
		Occupation:       v.Occupation(),
		Distance:         v.Distance(),
		Coords:           v.Coords(),
		TransitURL:       v.PublicTransportDirectionsURL(r.currentLocation),
		CarURL:           v.CarDirectionsURL(r.currentLocation),
		AreaMapURL:       v.AreaMapURL(),
		Offers:           v.Offers(),
		OffersType:       v.OffersType(),
		FoursquareID:     v.FoursquareVenueID(),
		OpeningHours:     v.OpeningHours(),
		VenueData:        v.VenueData(),
		ShortDescription: v.ShortDescription(),
		DetailOrder:      v.DetailOrder(),
		Images:           v.Images(),
	}

	menu, err := v.ExternalContentURL("menu")
	switch {
	case err == nil:
		out.MenuURL = menu
	case !errors.Is(err, ErrNotFound):
		r.logger.Warn("[renderer] Menu lookup failed for %s: %v", v.ID(), err)
	}

	return out
}

// extras collects the extra items of every detail phase that lists
// contacts, keyed by phase.
func (r *Renderer) extras(v *ListingView) map[string][]models.ExtraItem {
	extras := make(map[string][]models.ExtraItem)
	for _, phase := range v.DetailOrder() {
		kind := v.ExtraTypeForPhase(phase)
		if kind == "" {
			continue
		}
		if items := v.Extra(kind); len(items) > 0 {
			extras[phase] = items
		}
	}
	return extras
}

// Summarise renders every record and flattens it into a Summary row.
func (r *Renderer) Summarise(records []*models.ListingRecord) []*models.Summary {
	now := time.Now()
	if r.deps.Now != nil {
		now = r.deps.Now()
	}

	summaries := make([]*models.Summary, 0, len(records))
	for _, rec := range records {
		rendered := r.Render(rec)

		s := &models.Summary{
			ID:             rendered.ID,
			Name:           rendered.Name,
			EntryType:      rendered.EntryType,
			RowType:        rec.RowType,
			IsAd:           rendered.IsAd,
			Street:         rendered.Street,
			City:           rendered.City,
			Categories:     rendered.Categories,
			DistanceMeters: rec.Distance,
			Distance:       rendered.Distance,
			OfferCount:     len(rendered.Offers),
			Rendered:       rendered,
			CreatedAt:      now,
		}
		if len(rendered.Phones) > 0 {
			s.Phone = rendered.Phones[0].Display
		}
		if rendered.Coords != nil {
			s.Latitude = rendered.Coords.Latitude
			s.Longitude = rendered.Coords.Longitude
		}

		r.logger.Debug("[renderer] Rendered %s (%s)", s.ID, s.Name)
		summaries = append(summaries, s)
	}

	r.logger.Info("[renderer] Rendered %d entries", len(summaries))
	return summaries
}
