package models

// ListingRecord is one raw directory entry as delivered by the search backend.
// Every field is optional; absent groups decode to nil.
type ListingRecord struct {
	ID        string `json:"id"`
	RowType   string `json:"rowType"`
	Title     string `json:"title"`
	Subtitle  string `json:"subtitle"`
	Context   string `json:"context"`
	EntryType string `json:"entry_type"`

	Identity      *Identity         `json:"identity,omitempty"`
	Contacts      []ContactItem     `json:"contacts,omitempty"`
	Actions       []ActionItem      `json:"actions,omitempty"`
	Icons         map[string]string `json:"icons,omitempty"`
	ContentAds    *ContentAds       `json:"content_ads,omitempty"`
	Booking       *Booking          `json:"booking,omitempty"`
	Addresses     []Address         `json:"addresses,omitempty"`
	Business      *Business         `json:"business,omitempty"`
	LocalBusiness *LocalBusiness    `json:"local_business,omitempty"`
	Location      *Location         `json:"location,omitempty"`
	Distance      float64           `json:"distance,omitempty"`
}

type Identity struct {
	Name string `json:"name"`
}

// ContactItem is a single contact method. ElementName is "phone" for the
// main numbers and "extra" for everything listed in the detail view.
type ContactItem struct {
	ElementName       string `json:"element_name"`
	Type              string `json:"type"`
	ContactValue      string `json:"contact_value"`
	Display           string `json:"display"`
	Label             string `json:"label,omitempty"`
	Cost              string `json:"cost,omitempty"`
	RefuseAdvertising string `json:"refuse_advertising,omitempty"`
}

type ActionItem struct {
	AdType            string `json:"adType,omitempty"`
	URL               string `json:"url"`
	Label             string `json:"label"`
	RefuseAdvertising string `json:"refuse_advertising,omitempty"`
}

// ContentAds groups the paid content attached to an entry.
type ContentAds struct {
	Logo               *AdLogo             `json:"logo,omitempty"`
	Ratings            any                 `json:"ratings,omitempty"`
	MBAOffers          []Offer             `json:"mba_offers,omitempty"`
	Foursquare         *Foursquare         `json:"foursquare,omitempty"`
	OpeningHoursGroups []OpeningHoursGroup `json:"opening_hours_groups,omitempty"`
	OpeningHours       *OpeningHours       `json:"opening_hours,omitempty"`
	Venue              map[string]any      `json:"venue,omitempty"`
	Images             []ImageInfo         `json:"images,omitempty"`
}

type AdLogo struct {
	URL string `json:"url"`
}

// Offer is a promotional offer. Thumbnail and SmallThumbnail are derived from
// Photo when a view is built and are never present upstream.
type Offer struct {
	ID             Text   `json:"id"`
	Type           string `json:"type"`
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	Photo          string `json:"photo"`
	Thumbnail      string `json:"thumbnail,omitempty"`
	SmallThumbnail string `json:"small_thumbnail,omitempty"`
}

type Foursquare struct {
	ID string `json:"id"`
}

type OpeningHoursGroup struct {
	Days     string   `json:"days"`
	Times    []string `json:"times"`
	IsClosed bool     `json:"is_closed"`
}

type OpeningHours struct {
	Rows []OpeningHoursRow `json:"rows"`
}

type OpeningHoursRow struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type ImageInfo struct {
	URL string `json:"url"`
}

type Booking struct {
	Label string `json:"label"`
	URI   string `json:"uri"`
}

type Address struct {
	Street        string `json:"street,omitempty"`
	HouseNumber   Text   `json:"house_number,omitempty"`
	Zipcode       Text   `json:"zipcode,omitempty"`
	City          string `json:"city,omitempty"`
	POBoxNumber   string `json:"pobox_number,omitempty"`
	POBoxLocation string `json:"pobox_location,omitempty"`
}

type Business struct {
	Categories []Category `json:"categories,omitempty"`
	Occupation string     `json:"occupation,omitempty"`
}

type Category struct {
	Name string `json:"name"`
}

// LocalBusiness carries editorial data. Quote and DetailOrder are pointers
// because an empty value still counts as present.
type LocalBusiness struct {
	Quote       *string `json:"quote,omitempty"`
	DetailOrder *string `json:"detailorder,omitempty"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
