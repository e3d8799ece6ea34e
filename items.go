package ogmaker

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ErrNoItems is returned when the input holds no usable data array.
var ErrNoItems = errors.New("no valid data found")

var requiredFields = []string{"title", "tagline", "description"}

type document struct {
	Data json.RawMessage `json:"data"`
}

// LoadItems reads the JSON document at path and returns its data array.
func LoadItems(path string) ([]RawItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w in %s: %w", ErrNoItems, path, err)
	}
	defer f.Close()
	items, err := ParseItems(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ParseItems decodes a document of the form {"data": [...]} from r. It fails
// with ErrNoItems when the document is malformed, the data key is missing or
// not an array, or the array is empty.
func ParseItems(r io.Reader) ([]RawItem, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode json: %w", ErrNoItems, err)
	}
	if len(doc.Data) == 0 || string(doc.Data) == "null" {
		return nil, fmt.Errorf("%w: missing data array", ErrNoItems)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(doc.Data, &raw); err != nil {
		return nil, fmt.Errorf("%w: data is not an array", ErrNoItems)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: data array is empty", ErrNoItems)
	}
	items := make([]RawItem, len(raw))
	for i, msg := range raw {
		// Non-object entries decode to nil and are dropped during normalization.
		var m map[string]any
		_ = json.Unmarshal(msg, &m)
		items[i] = m
	}
	return items, nil
}

// NormalizeItems keeps the records that carry a non-empty title, tagline and
// description, attaches their slug, and preserves input order. It returns
// the retained items and the number of records dropped; every drop is
// logged as a warning.
func NormalizeItems(raw []RawItem, logger *slog.Logger) ([]Item, int) {
	logger = orDiscard(logger)
	items := make([]Item, 0, len(raw))
	dropped := 0
	for i, r := range raw {
		item, missing := normalize(r)
		if missing != "" {
			logger.Warn("item is missing required fields, skipping", "index", i, "field", missing)
			dropped++
			continue
		}
		items = append(items, item)
	}
	return items, dropped
}

// normalize returns the item built from r, or the name of the first
// required field that is absent, empty, or not a string.
func normalize(r RawItem) (Item, string) {
	values := make(map[string]string, len(requiredFields))
	for _, key := range requiredFields {
		s, ok := r[key].(string)
		if !ok || s == "" {
			return Item{}, key
		}
		values[key] = s
	}
	var extra map[string]any
	for k, v := range r {
		if _, ok := values[k]; ok {
			continue
		}
		if extra == nil {
			extra = make(map[string]any)
		}
		extra[k] = v
	}
	return Item{
		Title:       values["title"],
		Tagline:     values["tagline"],
		Description: values["description"],
		Slug:        Slugify(values["title"]),
		Extra:       extra,
	}, ""
}
