package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads and normalizes the catalog at path. It returns ErrNotFound when
// the file is absent and ErrInvalidFormat when the content is neither a bare
// item array nor an object with an items array.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading data file: %w", err)
	}
	return Parse(data)
}

// LoadOrEmpty is Load with an absent file treated as an empty catalog.
// Malformed content is still an error.
func LoadOrEmpty(path string) (*Catalog, error) {
	c, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		return &Catalog{Items: []*MenuItem{}}, nil
	}
	return c, err
}

// Parse decodes either accepted file shape into the canonical catalog.
// A bare array is the legacy shape; an object must carry an items array.
// Keys match exactly, and members the model does not know are preserved.
func Parse(data []byte) (*Catalog, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrInvalidFormat
	}

	var (
		items []*MenuItem
		extra map[string]json.RawMessage
	)
	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
	case '{':
		if err := json.Unmarshal(trimmed, &extra); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		raw := bytes.TrimSpace(extra["items"])
		if len(raw) == 0 || raw[0] != '[' {
			return nil, ErrInvalidFormat
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
		}
		delete(extra, "items")
		if len(extra) == 0 {
			extra = nil
		}
	default:
		return nil, ErrInvalidFormat
	}

	c := &Catalog{Items: make([]*MenuItem, 0, len(items)), Extra: extra}
	for i, it := range items {
		if it == nil {
			return nil, fmt.Errorf("%w: item %d is null", ErrInvalidFormat, i)
		}
		if it.Processed == nil {
			it.Processed = []string{}
		}
		c.Items = append(c.Items, it)
	}
	return c, nil
}

// Marshal renders the catalog in the canonical object shape with two-space
// indentation and a trailing newline. Text is written as-is, without HTML
// escaping.
func Marshal(c *Catalog) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("marshaling catalog: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the catalog to path atomically (write temp + rename). An
// existing file keeps its permission bits.
func Save(path string, c *Catalog) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return fmt.Errorf("writing temp data file: %w", err)
	}
	if err := os.Chmod(tmp, mode); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("setting data file mode: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming data file: %w", err)
	}
	return nil
}
