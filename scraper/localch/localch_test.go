package localch

import (
	"errors"
	"testing"
)

func TestDecodeEntryState(t *testing.T) {
	rec, err := decodeEntryState(`{"id": "mGz3rXbQ", "title": "Pizzeria Roma", "rowType": "entry",
		"contacts": [{"element_name": "phone", "contact_value": "+41446681800", "display": "044 668 18 00"}]}`)
	if err != nil {
		t.Fatalf("decodeEntryState: %v", err)
	}
	if rec.ID != "mGz3rXbQ" || rec.Title != "Pizzeria Roma" {
		t.Errorf("got %q / %q", rec.ID, rec.Title)
	}
	if len(rec.Contacts) != 1 || rec.Contacts[0].Display != "044 668 18 00" {
		t.Errorf("contacts: got %+v", rec.Contacts)
	}
}

func TestDecodeEntryStateRejects(t *testing.T) {
	tests := []struct {
		name    string
		state   string
		noEntry bool
	}{
		{"empty page", "", true},
		{"missing id", `{"title": "x"}`, true},
		{"broken json", `{"id": `, false},
	}

	for _, tt := range tests {
		_, err := decodeEntryState(tt.state)
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if got := errors.Is(err, errNoEntryState); got != tt.noEntry {
			t.Errorf("%s: errors.Is(errNoEntryState) = %v, want %v", tt.name, got, tt.noEntry)
		}
	}
}
