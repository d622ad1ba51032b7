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
// It returns scalar values as-is, and maps/slices for intermediate nodes.
func GetValue(cfg *Config, keyPath string) (any, error) {
	m, err := ToMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	return navigateMap(m, keyPath)
}

// SetValue sets a value in a raw YAML map by dot-notation key path,
// creating intermediate maps as needed. The raw value is parsed according
// to the type of the Config field the path names, so `title 2026` stays a
// string and `list_limit ten` is rejected.
func SetValue(data map[string]any, keyPath string, rawValue string) error {
	field, err := lookupField(keyPath)
	if err != nil {
		return err
	}
	value, err := coerceValue(field.Type, rawValue)
	if err != nil {
		return fmt.Errorf("%s: %w", keyPath, err)
	}

	parts := strings.Split(keyPath, ".")
	current := data
	for _, part := range parts[:len(parts)-1] {
		child, ok := current[part]
		if !ok || child == nil {
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
// Config field. The valid key set comes from the yaml struct tags.
func ValidateKeyPath(keyPath string) error {
	_, err := lookupField(keyPath)
	return err
}

// lookupField resolves a key path to the scalar struct field it sets.
func lookupField(keyPath string) (reflect.StructField, error) {
	if keyPath == "" {
		return reflect.StructField{}, fmt.Errorf("empty key path")
	}
	parts := strings.Split(keyPath, ".")

	top := yamlFields(reflect.TypeOf(Config{}))
	field, ok := top[parts[0]]
	if !ok {
		return reflect.StructField{}, fmt.Errorf("unknown key %q; valid top-level keys: %s", parts[0], sortedKeys(top))
	}

	switch field.Type.Kind() {
	case reflect.Slice:
		return reflect.StructField{}, fmt.Errorf("%s is a list and cannot be set via config set; edit %s directly", parts[0], FileName)
	case reflect.Struct:
		if len(parts) != 2 {
			return reflect.StructField{}, fmt.Errorf("%s requires exactly one field (e.g. %s.owner)", parts[0], parts[0])
		}
		sub := yamlFields(field.Type)
		f, ok := sub[parts[1]]
		if !ok {
			return reflect.StructField{}, fmt.Errorf("unknown %s field %q; valid fields: %s", parts[0], parts[1], sortedKeys(sub))
		}
		return f, nil
	default:
		if len(parts) > 1 {
			return reflect.StructField{}, fmt.Errorf("key %q is a scalar; cannot use sub-keys", parts[0])
		}
		return field, nil
	}
}

// ToMap marshals a Config to a map via YAML round-trip, omitting zero values.
func ToMap(cfg *Config) (map[string]any, error) {
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
			return nil, fmt.Errorf("key %q not set", keyPath)
		}
		current = val
	}
	return current, nil
}

// coerceValue parses s as a value for a field of type t. Pointer fields
// take the type they point to.
func coerceValue(t reflect.Type, s string) (any, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("expected true or false, got %q", s)
		}
		return b, nil
	case reflect.Int:
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("expected an integer, got %q", s)
		}
		return n, nil
	default:
		return s, nil
	}
}

// yamlFields maps yaml tag names to the fields of a struct type.
func yamlFields(t reflect.Type) map[string]reflect.StructField {
	fields := make(map[string]reflect.StructField)
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = f
	}
	return fields
}

// sortedKeys returns a comma-separated sorted list of map keys.
func sortedKeys(m map[string]reflect.StructField) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, ", ")
}
