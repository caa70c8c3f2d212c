package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"listing-view/models"
)

// searchResponse is the envelope the search backend wraps entries in.
type searchResponse struct {
	Entries []*models.ListingRecord `json:"entries"`
}

// ReadRecordsFile loads listing records from a JSON file.
func ReadRecordsFile(path string) ([]*models.ListingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("json: open %q: %w", path, err)
	}
	defer f.Close()

	return ReadRecords(f)
}

// ReadRecords decodes either a bare array of records or a search response
// object with an "entries" array.
func ReadRecords(r io.Reader) ([]*models.ListingRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("json: read: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var records []*models.ListingRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("json: decode records: %w", err)
		}
		return records, nil
	}

	var resp searchResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("json: decode search response: %w", err)
	}
	return resp.Entries, nil
}
