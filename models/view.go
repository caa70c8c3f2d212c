package models

// Target identifies what an ad row links to.
type Target struct {
	ID         string  `json:"id"`
	OfferID    *string `json:"offer_id"`
	EmbedOffer bool    `json:"embed_offer"`
}

type PhoneView struct {
	AnchorHref string  `json:"anchor_href"`
	Label      string  `json:"label"`
	Display    string  `json:"display"`
	NoAds      bool    `json:"noAds"`
	Cost       *string `json:"cost"`
}

// ExtraItem is one row of the "more contacts" block. AnchorHref is nil for
// items that are not links (faxes).
type ExtraItem struct {
	Key        string  `json:"key"`
	Label      string  `json:"label,omitempty"`
	AnchorHref *string `json:"anchor_href"`
	Text       string  `json:"text"`
	NoAds      bool    `json:"noAds"`
	Cost       string  `json:"cost,omitempty"`
	ActionURL  string  `json:"action_url,omitempty"`
}

type Logo struct {
	Src string `json:"src"`
	URL string `json:"url,omitempty"`
}

type BookingView struct {
	Label     string `json:"label"`
	ActionURL string `json:"action_url"`
	URL       string `json:"url"`
}

type Coords struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Thumbnail is empty when the entry has no thumbnail icon.
type Thumbnail struct {
	Src  string `json:"src,omitempty"`
	Type string `json:"type,omitempty"`
}

// OpeningHoursEntry is either a structured group (Subtitle and IsOpen set)
// or a free-text row (Text only).
type OpeningHoursEntry struct {
	Text     string `json:"text"`
	Subtitle string `json:"subtitle,omitempty"`
	IsOpen   *bool  `json:"isOpen,omitempty"`
}

type VenueGroup struct {
	Key   string `json:"key"`
	Items []any  `json:"items"`
}
