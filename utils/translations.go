package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/text/language"
)

// supportedLanguages is ordered by preference; the first entry is the
// fallback when nothing matches.
var supportedLanguages = []language.Tag{
	language.German,
	language.French,
	language.Italian,
	language.English,
}

var defaultCatalogue = map[string]map[string]string{
	"de": {
		"show_extra_label_phone":   "Telefon",
		"show_extra_label_mobile":  "Mobile",
		"show_extra_label_fax":     "Fax",
		"show_extra_label_email":   "E-Mail",
		"show_extra_label_website": "Website",
		"show_extra_vcard":         "Kontakt speichern (vCard)",
		"opening_hours_closed":     "geschlossen",
	},
	"fr": {
		"show_extra_label_phone":   "Téléphone",
		"show_extra_label_mobile":  "Mobile",
		"show_extra_label_fax":     "Fax",
		"show_extra_label_email":   "E-mail",
		"show_extra_label_website": "Site web",
		"show_extra_vcard":         "Enregistrer le contact (vCard)",
		"opening_hours_closed":     "fermé",
	},
	"it": {
		"show_extra_label_phone":   "Telefono",
		"show_extra_label_mobile":  "Cellulare",
		"show_extra_label_fax":     "Fax",
		"show_extra_label_email":   "E-mail",
		"show_extra_label_website": "Sito web",
		"show_extra_vcard":         "Salva contatto (vCard)",
		"opening_hours_closed":     "chiuso",
	},
	"en": {
		"show_extra_label_phone":   "Phone",
		"show_extra_label_mobile":  "Mobile",
		"show_extra_label_fax":     "Fax",
		"show_extra_label_email":   "Email",
		"show_extra_label_website": "Website",
		"show_extra_vcard":         "Save contact (vCard)",
		"opening_hours_closed":     "closed",
	},
}

// Translations resolves UI strings for one language.
type Translations struct {
	lang      string
	catalogue map[string]string
}

// NewTranslations picks the best supported language for preferred, which may
// be a bare code ("fr") or an Accept-Language header ("fr-CH,de;q=0.8").
func NewTranslations(preferred string) *Translations {
	lang := matchLanguage(preferred)
	catalogue := make(map[string]string, len(defaultCatalogue[lang]))
	for k, v := range defaultCatalogue[lang] {
		catalogue[k] = v
	}
	return &Translations{lang: lang, catalogue: catalogue}
}

func matchLanguage(preferred string) string {
	matcher := language.NewMatcher(supportedLanguages)
	tags, _, err := language.ParseAcceptLanguage(preferred)
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{supportedLanguages[0]}
	}
	_, idx, _ := matcher.Match(tags...)
	base, _ := supportedLanguages[idx].Base()
	return base.String()
}

// Load merges the current language's section of a JSON file shaped
// {"de": {"key": "text"}, "fr": {...}} over the built-in strings.
func (t *Translations) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("translations: read %q: %w", path, err)
	}

	var file map[string]map[string]string
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("translations: decode %q: %w", path, err)
	}

	for k, v := range file[t.lang] {
		t.catalogue[k] = v
	}
	return nil
}

// T returns the text for key, or the key itself when it is unknown.
func (t *Translations) T(key string) string {
	if v, ok := t.catalogue[key]; ok {
		return v
	}
	return key
}

// Language returns the two-letter code of the selected language.
func (t *Translations) Language() string {
	return t.lang
}
