package financials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for input files with an unknown extension
var ErrUnsupportedFormat = errors.New("unsupported input file format")

// LoadFile populates f from a YAML (.yaml, .yml) or TOML (.toml) document.
// The document is a flat map keyed by option key; series take a list.
func LoadFile(path string, f *Financials) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read input file: %w", err)
	}

	var doc map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("parse input file %s: %w", path, err)
	}

	return Populate(f, doc)
}

// Populate applies a decoded key/value document to f. Keys are applied in
// sorted order so that the result does not depend on map iteration.
func Populate(f *Financials, doc map[string]interface{}) error {
	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		q, ok := Lookup(key)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}

		list, isList := doc[key].([]interface{})
		if isList && q.Kind != KindSeries {
			return fmt.Errorf("%s: expected a single value, got a list", key)
		}
		if !isList {
			list = []interface{}{doc[key]}
		}

		for _, item := range list {
			if err := setItem(q, f, item); err != nil {
				return err
			}
		}
	}

	return nil
}

func setItem(q Quantity, f *Financials, item interface{}) error {
	switch v := item.(type) {
	case string:
		return q.Set(f, v)
	case int:
		return q.SetValue(f, float64(v))
	case int64:
		return q.SetValue(f, float64(v))
	case uint64:
		return q.SetValue(f, float64(v))
	case float64:
		return q.SetValue(f, v)
	default:
		return fmt.Errorf("%s: unsupported value %v", q.Key, item)
	}
}
