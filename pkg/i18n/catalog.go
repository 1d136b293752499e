package i18n

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"

	"gitlab.com/tozd/go/errors"
)

// 📚 Catalog is the set of translation keys, kept in first-seen order.
// Each key maps to itself when encoded.
type Catalog struct {
	keys  []string
	index map[string]struct{}
	seen  int
}

// NewCatalog creates an empty catalog
func NewCatalog() *Catalog {
	return &Catalog{index: make(map[string]struct{})}
}

// Add records keys. A key already present keeps its original position.
func (c *Catalog) Add(keys ...string) {
	for _, k := range keys {
		c.seen++
		if _, ok := c.index[k]; ok {
			continue
		}
		c.index[k] = struct{}{}
		c.keys = append(c.keys, k)
	}
}

// Len returns the number of distinct keys.
func (c *Catalog) Len() int {
	return len(c.keys)
}

// Seen returns how many keys were added, duplicates included.
func (c *Catalog) Seen() int {
	return c.seen
}

// Has reports whether key is in the catalog.
func (c *Catalog) Has(key string) bool {
	_, ok := c.index[key]
	return ok
}

// Keys returns the distinct keys in first-seen order.
func (c *Catalog) Keys() []string {
	return append([]string(nil), c.keys...)
}

// Sorted returns a copy of the catalog with keys in byte order.
func (c *Catalog) Sorted() *Catalog {
	keys := c.Keys()
	sort.Strings(keys)

	sorted := NewCatalog()
	sorted.Add(keys...)
	sorted.seen = c.seen
	return sorted
}

// MarshalJSON encodes the catalog as a flat object mapping every key to
// itself, preserving key order.
func (c *Catalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	out := bytes.NewBufferString("{")
	for i, k := range c.keys {
		buf.Reset()
		if err := enc.Encode(k); err != nil {
			return nil, errors.Errorf("encoding key %q: %w", k, err)
		}
		quoted := bytes.TrimRight(buf.Bytes(), "\n")

		if i > 0 {
			out.WriteByte(',')
		}
		out.Write(quoted)
		out.WriteByte(':')
		out.Write(quoted)
	}
	out.WriteByte('}')
	return out.Bytes(), nil
}

// Encode writes the catalog as JSON indented with four spaces. Non-ASCII
// text is written literally.
func (c *Catalog) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		return errors.Errorf("encoding catalog: %w", err)
	}
	return nil
}

// Bytes returns the encoded catalog without a trailing newline.
func (c *Catalog) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
