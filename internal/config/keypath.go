package config

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// settable maps every dotted key that config get/set accept to the Go kind
// of the field behind it. Built from the yaml tags of Config.
var settable = keyKinds(reflect.TypeOf(Config{}), "")

func keyKinds(t reflect.Type, prefix string) map[string]reflect.Kind {
	out := make(map[string]reflect.Kind)
	for i := range t.NumField() {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			continue
		}
		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}
		if ft.Kind() == reflect.Struct {
			maps.Copy(out, keyKinds(ft, prefix+name+"."))
			continue
		}
		out[prefix+name] = ft.Kind()
	}
	return out
}

// ValidateKeyPath checks that keyPath names a settable field, such as
// "district" or "source.base_url".
func ValidateKeyPath(keyPath string) error {
	if keyPath == "" {
		return fmt.Errorf("empty key path")
	}
	if _, ok := settable[keyPath]; ok {
		return nil
	}

	head, rest, nested := strings.Cut(keyPath, ".")
	if head != "source" {
		if _, ok := settable[head]; ok && nested {
			return fmt.Errorf("key %q is a scalar; cannot use sub-keys", head)
		}
		return fmt.Errorf("unknown key %q; valid top-level keys: %s", head, strings.Join(topLevelKeys(), ", "))
	}
	fields := sourceFields()
	switch {
	case !nested:
		return fmt.Errorf("source requires a field (e.g. source.base_url); valid fields: %s", strings.Join(fields, ", "))
	case strings.Contains(rest, "."):
		return fmt.Errorf("key path too deep: %q", keyPath)
	default:
		return fmt.Errorf("unknown source field %q; valid fields: %s", rest, strings.Join(fields, ", "))
	}
}

// GetValue returns the value set at keyPath in cfg. A section key such as
// "source" returns the map of its set fields.
func GetValue(cfg *Config, keyPath string) (any, error) {
	m, err := toMap(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshaling config: %w", err)
	}
	var cur any = m
	for part := range strings.SplitSeq(keyPath, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("key %q: parent is not a map", part)
		}
		if cur, ok = node[part]; !ok {
			return nil, fmt.Errorf("key %q not found", keyPath)
		}
	}
	return cur, nil
}

// SetValue stores rawValue at keyPath in a raw YAML document, creating the
// source section when needed. The value is parsed according to the field it
// lands in, so "concurrency" must be an integer and "color_seed" unsigned.
func SetValue(data map[string]any, keyPath, rawValue string) error {
	if err := ValidateKeyPath(keyPath); err != nil {
		return err
	}
	v, err := parseFor(settable[keyPath], rawValue)
	if err != nil {
		return fmt.Errorf("%s: %w", keyPath, err)
	}

	section, field, nested := strings.Cut(keyPath, ".")
	if !nested {
		data[keyPath] = v
		return nil
	}
	sub, ok := data[section].(map[string]any)
	if !ok {
		if _, exists := data[section]; exists {
			return fmt.Errorf("key %q is not a map", section)
		}
		sub = make(map[string]any)
		data[section] = sub
	}
	sub[field] = v
	return nil
}

// Flatten returns cfg's set values keyed by dotted path.
func Flatten(cfg *Config) (map[string]any, error) {
	m, err := toMap(cfg)
	if err != nil {
		return nil, err
	}
	return FlattenMap(m, ""), nil
}

// FlattenMap flattens nested maps into dotted keys.
func FlattenMap(m map[string]any, prefix string) map[string]any {
	out := make(map[string]any)
	for k, v := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			maps.Copy(out, FlattenMap(sub, k))
			continue
		}
		out[k] = v
	}
	return out
}

func parseFor(kind reflect.Kind, raw string) (any, error) {
	switch kind {
	case reflect.Int, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", raw)
		}
		return int(n), nil
	case reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an unsigned integer", raw)
		}
		return n, nil
	default:
		return raw, nil
	}
}

func toMap(cfg *Config) (map[string]any, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	m := make(map[string]any)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func topLevelKeys() []string {
	seen := make(map[string]bool)
	for k := range settable {
		head, _, _ := strings.Cut(k, ".")
		seen[head] = true
	}
	return slices.Sorted(maps.Keys(seen))
}

func sourceFields() []string {
	var out []string
	for k := range settable {
		if f, ok := strings.CutPrefix(k, "source."); ok {
			out = append(out, f)
		}
	}
	slices.Sort(out)
	return out
}
