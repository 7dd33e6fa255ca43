package config

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// GetValue retrieves a value from a Config by dot-notation key path.
// It returns scalar values as-is, and maps for sections.
func GetValue(cfg *Config, keyPath string) (any, error) {
	m, err := configToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return navigateMap(m, keyPath)
}

// SetValue sets a value in a raw config map by dot-notation key path,
// creating intermediate maps as needed. The raw value is converted to the
// type of the target field.
func SetValue(data map[string]any, keyPath string, rawValue string) error {
	field, err := lookupField(keyPath)
	if err != nil {
		return err
	}
	value, err := coerceValue(field, rawValue)
	if err != nil {
		return fmt.Errorf("%s: %w", keyPath, err)
	}

	parts := strings.Split(keyPath, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		child, ok := current[part]
		if !ok {
			next := make(map[string]any)
			current[part] = next
			current = next
			continue
		}
		next, ok := child.(map[string]any)
		if !ok {
			return fmt.Errorf("key %q is not a map", part)
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// FlattenMap recursively flattens a nested map to dot-notation keys.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			for sk, sv := range FlattenMap(sub, key) {
				result[sk] = sv
			}
		} else {
			result[key] = v
		}
	}
	return result
}

// ValidateKeyPath checks that a dot-notation key path names a settable
// Config field. Sections such as "generate" are not settable on their own.
func ValidateKeyPath(keyPath string) error {
	_, err := lookupField(keyPath)
	return err
}

// lookupField resolves keyPath against the yaml tags of Config and returns
// the type of the leaf field.
func lookupField(keyPath string) (reflect.Type, error) {
	if keyPath == "" {
		return nil, fmt.Errorf("empty key path")
	}
	parts := strings.Split(keyPath, ".")

	t := reflect.TypeOf(Config{})
	for i, part := range parts {
		keys := yamlKeys(t)
		ft, ok := keys[part]
		if !ok {
			if i == 0 {
				return nil, fmt.Errorf("unknown key %q; valid top-level keys: %s", part, sortedKeys(keys))
			}
			return nil, fmt.Errorf("unknown %s field %q; valid fields: %s", strings.Join(parts[:i], "."), part, sortedKeys(keys))
		}
		if ft.Kind() == reflect.Struct {
			if i == len(parts)-1 {
				return nil, fmt.Errorf("%s is a section; set one of its fields: %s", keyPath, sortedKeys(yamlKeys(ft)))
			}
			t = ft
			continue
		}
		if i != len(parts)-1 {
			return nil, fmt.Errorf("key %q is a scalar; cannot use sub-keys", strings.Join(parts[:i+1], "."))
		}
		return ft, nil
	}
	return nil, fmt.Errorf("key path too deep: %q", keyPath)
}

// configToMap marshals a Config to a map via YAML round-trip.
func configToMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = make(map[string]any)
	}
	return m, nil
}

// navigateMap traverses a nested map using a dot-notation key path.
func navigateMap(m map[string]any, keyPath string) (any, error) {
	parts := strings.Split(keyPath, ".")
	var current any = m
	for _, part := range parts {
		cm, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: parent is not a map", part)
		}
		val, exists := cm[part]
		if !exists {
			return nil, fmt.Errorf("key %q not found", keyPath)
		}
		current = val
	}
	return current, nil
}

// coerceValue converts s to the kind of field t.
func coerceValue(t reflect.Type, s string) (any, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean %q", s)
		}
		return b, nil
	case reflect.String:
		return s, nil
	}
	return nil, fmt.Errorf("unsupported field type %s", t)
}

// yamlKeys maps the yaml tag names of a struct type to their field types.
func yamlKeys(t reflect.Type) map[string]reflect.Type {
	keys := make(map[string]reflect.Type)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			keys[name] = f.Type
		}
	}
	return keys
}

// sortedKeys returns a comma-separated sorted list of map keys.
func sortedKeys(m map[string]reflect.Type) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
