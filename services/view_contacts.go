package services

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"listing-view/models"
)

// ErrNotFound is returned when a requested detail item does not exist.
var ErrNotFound = errors.New("not found")

const (
	elementPhone = "phone"
	elementExtra = "extra"

	refuseAdvertising = "true"
	vcardURLPrefix    = "http://tel.local.ch/en/vcard/"
)

// ContactKind is the type of an "extra" contact. Each kind renders its own
// link and text; kinds without a rule (logos) are skipped.
type ContactKind string

const (
	KindPhone   ContactKind = "phone"
	KindMobile  ContactKind = "mobile"
	KindFax     ContactKind = "fax"
	KindEmail   ContactKind = "email"
	KindWebsite ContactKind = "website"
	KindAction  ContactKind = "action"
)

var phaseToKind = map[string]ContactKind{
	"emails":   KindEmail,
	"websites": KindWebsite,
	"faxes":    KindFax,
	"phones":   KindPhone,
	"mobiles":  KindMobile,
	"actions":  KindAction,
}

// render derives the link and text for c. ok is false for kinds that are
// not shown in the extra block.
func (k ContactKind) render(c models.ContactItem) (href *string, text string, ok bool) {
	switch k {
	case KindPhone, KindMobile:
		return strPtr("tel:" + c.ContactValue), c.Display, true
	case KindFax:
		return nil, c.Display, true
	case KindEmail:
		return strPtr("mailto:" + c.ContactValue), c.ContactValue, true
	case KindWebsite:
		return strPtr(c.ContactValue), c.Display, true
	default:
		return nil, "", false
	}
}

// Phones returns the main phone numbers in source order.
func (v *ListingView) Phones() []models.PhoneView {
	phones := make([]models.PhoneView, 0)
	for _, c := range v.rec.Contacts {
		if c.ElementName != elementPhone {
			continue
		}

		label := c.Label
		if label == "" {
			label = v.translator.T("show_extra_label_phone")
		}
		var cost *string
		if c.Cost != "" {
			cost = strPtr(c.Cost)
		}

		phones = append(phones, models.PhoneView{
			AnchorHref: "tel:" + c.ContactValue,
			Label:      label,
			Display:    c.Display,
			NoAds:      c.RefuseAdvertising == refuseAdvertising,
			Cost:       cost,
		})
	}
	return phones
}

// Extra returns the extra contact items of the given kind, ordered by
// DetailOrder. For KindAction the entry's actions and, unless the entry is
// a POI, a vCard link are included.
//
// Items whose key is missing from the detail order get index -1 and so sort
// ahead of every listed key. The sort is stable.
func (v *ListingView) Extra(kind ContactKind) []models.ExtraItem {
	items := make([]models.ExtraItem, 0)

	for _, c := range v.rec.Contacts {
		if c.ElementName != elementExtra || ContactKind(c.Type) != kind {
			continue
		}

		href, text, ok := kind.render(c)
		if !ok {
			continue
		}

		label := c.Label
		if label == "" {
			label = v.translator.T("show_extra_label_" + c.Type)
		}

		items = append(items, models.ExtraItem{
			Key:        c.Type,
			Label:      label,
			AnchorHref: href,
			Text:       text,
			NoAds:      c.RefuseAdvertising == refuseAdvertising,
			Cost:       c.Cost,
		})
	}

	if kind == KindAction {
		items = append(items, v.actionItems()...)
	}

	order := v.DetailOrder()
	slices.SortStableFunc(items, func(a, b models.ExtraItem) int {
		return cmp.Compare(slices.Index(order, a.Key), slices.Index(order, b.Key))
	})
	return items
}

func (v *ListingView) actionItems() []models.ExtraItem {
	items := make([]models.ExtraItem, 0, len(v.rec.Actions)+1)

	for _, a := range v.rec.Actions {
		key := "context_generic_action"
		href := a.URL
		if a.AdType != "" {
			key = "context_" + a.AdType
			href = "#d/" + v.rec.ID + "/" + a.AdType
		}

		items = append(items, models.ExtraItem{
			Key:        key,
			AnchorHref: strPtr(href),
			Text:       a.Label,
			NoAds:      a.RefuseAdvertising == refuseAdvertising,
			ActionURL:  a.URL,
		})
	}

	if v.EntryType() != entryTypePOI {
		items = append(items, models.ExtraItem{
			Key:        "context_vcard",
			AnchorHref: strPtr(vcardURLPrefix + v.rec.ID),
			Text:       v.translator.T("show_extra_vcard"),
		})
	}
	return items
}

// ExtraTypeForPhase maps a detail phase ("phones", "emails", ...) onto the
// contact kind it lists. Unknown phases yield "".
func (v *ListingView) ExtraTypeForPhase(phase string) ContactKind {
	return phaseToKind[phase]
}

// ExternalContentURL returns the target URL of the action whose content type
// is contentType ("localina", "menu", ...).
func (v *ListingView) ExternalContentURL(contentType string) (string, error) {
	key := "context_" + contentType
	for _, item := range v.Extra(KindAction) {
		if item.Key == key {
			return item.ActionURL, nil
		}
	}
	return "", fmt.Errorf("%w: extra item %q on entry %q", ErrNotFound, key, v.rec.ID)
}

func strPtr(s string) *string { return &s }
