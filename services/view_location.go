package services

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"listing-view/models"
	"listing-view/utils"
)

const timetableURL = "http://fahrplan.sbb.ch/bin/query.exe/"

// PrimaryAddress is the first address of the entry, or the zero Address.
func (v *ListingView) PrimaryAddress() models.Address {
	if len(v.rec.Addresses) == 0 {
		return models.Address{}
	}
	return v.rec.Addresses[0]
}

// Street joins street name and house number; either may be missing.
func (v *ListingView) Street() string {
	a := v.PrimaryAddress()
	return joinPresent(" ", a.Street, string(a.HouseNumber))
}

func (v *ListingView) City() string {
	a := v.PrimaryAddress()
	return joinPresent(" ", string(a.Zipcode), a.City)
}

func (v *ListingView) POBoxNumber() string {
	return v.PrimaryAddress().POBoxNumber
}

func (v *ListingView) POBoxLocation() string {
	return v.PrimaryAddress().POBoxLocation
}

// FullLocation is the subtitle as delivered, possibly HTML-escaped.
func (v *ListingView) FullLocation() string {
	return v.rec.Subtitle
}

func (v *ListingView) UnescapedFullLocation() string {
	return utils.HTMLText(v.FullLocation())
}

// Coords returns nil unless both coordinates are set and non-zero.
func (v *ListingView) Coords() *models.Coords {
	loc := v.rec.Location
	if loc == nil || loc.Longitude == 0 || loc.Latitude == 0 {
		return nil
	}
	return &models.Coords{Longitude: loc.Longitude, Latitude: loc.Latitude}
}

func (v *ListingView) Distance() string {
	if v.rec.Distance == 0 {
		return ""
	}
	return FormatDistance(v.rec.Distance)
}

// FormatDistance renders meters below one kilometre and kilometres rounded
// to one decimal above.
func FormatDistance(meters float64) string {
	if meters >= 1000 {
		km := math.Round(meters/1000*10) / 10
		return strconv.FormatFloat(km, 'f', -1, 64) + " km"
	}
	return strconv.FormatFloat(meters, 'f', -1, 64) + " m"
}

// PublicTransportDirectionsURL links to the SBB timetable, departing now
// from currentLocation to the entry.
func (v *ListingView) PublicTransportDirectionsURL(currentLocation string) string {
	now := v.now()

	params := []struct{ key, value string }{
		{"profile", "C4"},
		{"REQ0JourneyStopsZ0A", "7"},
		{"REQ0JourneyStopsS0A", "7"},
		{"start", "1"},
		{"S", currentLocation},
		{"Z", v.UnescapedFullLocation()},
		{"V1", ""},
		{"timesel", "depart"},
		{"date", fmt.Sprintf("%d.%d.%d", now.Day(), int(now.Month()), now.Year())},
		{"time", fmt.Sprintf("%d:%02d", now.Hour(), now.Minute())},
	}

	// Parameter order is part of the link format.
	query := make([]string, len(params))
	for i, p := range params {
		query[i] = url.QueryEscape(p.key) + "=" + url.QueryEscape(p.value)
	}

	lang := v.translator.Language()
	if lang != "" {
		lang = lang[:1]
	}
	return timetableURL + lang + "ox?" + strings.Join(query, "&")
}

func (v *ListingView) CarDirectionsURL(currentLocation string) string {
	query := "f=d"
	if currentLocation != "" {
		query += "&saddr=" + currentLocation
	}
	query += "&daddr=" + utils.JSEscape(v.UnescapedFullLocation())
	return v.maps.MapsProviderURL(query)
}

// AreaMapURL centres the maps app on the entry. Entries without a location
// have no area map.
func (v *ListingView) AreaMapURL() string {
	loc := v.rec.Location
	if loc == nil {
		return ""
	}
	return v.maps.MapsProviderURL("q=" + formatCoord(loc.Latitude) + "," + formatCoord(loc.Longitude))
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func joinPresent(sep string, parts ...string) string {
	present := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, sep)
}
