package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// member is one key/value pair of a JSON object in output order.
type member struct {
	key string
	val []byte
}

// UnmarshalJSON decodes an item object. Keys match exactly; unknown keys
// are kept in Extra.
func (it *MenuItem) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*it = MenuItem{}
	for k, raw := range fields {
		switch k {
		case "name":
			if err := json.Unmarshal(raw, &it.Name); err != nil {
				return fmt.Errorf("name: %w", err)
			}
		case "processed":
			if err := json.Unmarshal(raw, &it.Processed); err != nil {
				return fmt.Errorf("processed: %w", err)
			}
		default:
			if it.Extra == nil {
				it.Extra = make(map[string]json.RawMessage)
			}
			it.Extra[k] = raw
		}
	}
	return nil
}

// MarshalJSON writes name and processed first, then Extra in key order.
func (it MenuItem) MarshalJSON() ([]byte, error) {
	name, err := encode(it.Name)
	if err != nil {
		return nil, err
	}
	processed := it.Processed
	if processed == nil {
		processed = []string{}
	}
	list, err := encode(processed)
	if err != nil {
		return nil, err
	}
	return writeObject([]member{{"name", name}, {"processed", list}}, it.Extra)
}

// MarshalJSON writes items first, then Extra in key order.
func (c Catalog) MarshalJSON() ([]byte, error) {
	items := c.Items
	if items == nil {
		items = []*MenuItem{}
	}
	list, err := encode(items)
	if err != nil {
		return nil, err
	}
	return writeObject([]member{{"items", list}}, c.Extra)
}

// encode marshals v without HTML escaping and without a trailing newline.
func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeObject renders known members in order followed by extra members
// sorted by key. Extra keys shadowed by a known member are skipped.
func writeObject(known []member, extra map[string]json.RawMessage) ([]byte, error) {
	keys := make([]string, 0, len(extra))
	for k := range extra {
		if !slices.ContainsFunc(known, func(m member) bool { return m.key == k }) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	for _, k := range keys {
		known = append(known, member{k, extra[k]})
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range known {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := encode(m.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
