package services

import (
	"strings"
	"unicode"

	"github.com/nyaruka/phonenumbers"

	"listing-view/models"
	"listing-view/utils"
)

// Cleaner prepares raw records for rendering: it drops records without an
// id, removes duplicates, tidies text and brings phone numbers to E.164.
// Input records are never modified; cleaned copies are returned.
type Cleaner struct {
	logger *utils.Logger
	region string
}

// NewCleaner creates a Cleaner. region is the ISO country used for numbers
// written without a country prefix.
func NewCleaner(logger *utils.Logger, region string) *Cleaner {
	return &Cleaner{logger: logger, region: strings.ToUpper(region)}
}

// Clean processes raw records and returns cleaned copies in input order.
func (c *Cleaner) Clean(raw []*models.ListingRecord) []*models.ListingRecord {
	seen := utils.NewKeySet()
	result := make([]*models.ListingRecord, 0, len(raw))

	for _, r := range raw {
		if r == nil {
			continue
		}

		id := strings.TrimSpace(r.ID)
		if id == "" {
			c.logger.Warn("[cleaner] Dropping record without id: %q", r.Title)
			continue
		}
		if !seen.Add(id) {
			c.logger.Debug("[cleaner] Duplicate id skipped: %s", id)
			continue
		}

		rec := *r
		rec.ID = id
		rec.RowType = strings.TrimSpace(r.RowType)
		rec.EntryType = strings.TrimSpace(r.EntryType)
		rec.Title = normaliseText(r.Title)
		rec.Subtitle = normaliseText(r.Subtitle)
		rec.Contacts = c.cleanContacts(r.Contacts)

		result = append(result, &rec)
	}

	c.logger.Info("[cleaner] Cleaned %d → %d records (dropped %d)",
		len(raw), len(result), len(raw)-len(result))
	return result
}

func (c *Cleaner) cleanContacts(contacts []models.ContactItem) []models.ContactItem {
	if contacts == nil {
		return nil
	}

	cleaned := make([]models.ContactItem, len(contacts))
	for i, ct := range contacts {
		ct.Display = normaliseText(ct.Display)
		if isPhoneContact(ct) {
			ct.ContactValue = c.normalisePhone(ct.ContactValue)
		} else {
			ct.ContactValue = strings.TrimSpace(ct.ContactValue)
		}
		cleaned[i] = ct
	}
	return cleaned
}

func isPhoneContact(ct models.ContactItem) bool {
	if ct.ElementName == elementPhone {
		return true
	}
	switch ContactKind(ct.Type) {
	case KindPhone, KindMobile, KindFax:
		return ct.ElementName == elementExtra
	}
	return false
}

// normalisePhone formats a number to E.164. Numbers that cannot be parsed
// or are not valid are returned trimmed.
func (c *Cleaner) normalisePhone(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	number, err := phonenumbers.Parse(trimmed, c.region)
	if err != nil || !phonenumbers.IsValidNumber(number) {
		c.logger.Debug("[cleaner] Keeping unparseable phone number: %q", trimmed)
		return trimmed
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

// normaliseText strips leading/trailing whitespace and collapses internal whitespace.
func normaliseText(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}
