package bridge

import (
	"fmt"
	"math"
	"strings"

	"github.com/framehaus/cadbridge/internal/cadwork"
	"github.com/mitchellh/mapstructure"
)

// Args wraps the raw params map of a request with typed accessors.
// Accessors return descriptive errors naming the offending key so the
// envelope message tells the agent what to fix.
type Args map[string]any

// Has reports whether the key is present (including explicit null).
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// Float returns a required numeric argument.
func (a Args) Float(key string) (float64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("missing required argument: %s", key)
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, fmt.Errorf("%s must be a number, got %v", key, v)
	}
	return f, nil
}

// FloatDefault returns an optional numeric argument.
func (a Args) FloatDefault(key string, def float64) (float64, error) {
	if v, ok := a[key]; !ok || v == nil {
		return def, nil
	}
	return a.Float(key)
}

// PositiveFloat returns a required numeric argument that must be > 0.
func (a Args) PositiveFloat(key string) (float64, error) {
	f, err := a.Float(key)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, fmt.Errorf("%s must be a positive number, got %v", key, f)
	}
	return f, nil
}

// Int returns a required integer argument.
func (a Args) Int(key string) (int, error) {
	f, err := a.Float(key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s must be an integer, got %v", key, f)
	}
	return int(f), nil
}

// IntDefault returns an optional integer argument.
func (a Args) IntDefault(key string, def int) (int, error) {
	if v, ok := a[key]; !ok || v == nil {
		return def, nil
	}
	return a.Int(key)
}

// ElementID returns a required non-negative element id.
func (a Args) ElementID(key string) (int, error) {
	id, err := a.Int(key)
	if err != nil {
		return 0, err
	}
	if id < 0 {
		return 0, fmt.Errorf("%s must be a non-negative element id, got %d", key, id)
	}
	return id, nil
}

// ElementIDs returns the id list under key; missing or null yields an
// empty list, ids must be non-negative integers.
func (a Args) ElementIDs(key string) ([]int, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list of element ids", key)
	}
	ids := make([]int, 0, len(raw))
	for _, item := range raw {
		f, ok := toFloat(item)
		if !ok || f != math.Trunc(f) || f < 0 {
			return nil, fmt.Errorf("invalid element id in %s: %v", key, item)
		}
		ids = append(ids, int(f))
	}
	return ids, nil
}

// RequiredElementIDs is ElementIDs but rejects an empty list.
func (a Args) RequiredElementIDs(key string) ([]int, error) {
	ids, err := a.ElementIDs(key)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no element ids provided in %s", key)
	}
	return ids, nil
}

// String returns a required non-blank string argument.
func (a Args) String(key string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return "", fmt.Errorf("missing required argument: %s", key)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %v", key, v)
	}
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%s must be a non-empty string", key)
	}
	return s, nil
}

// StringDefault returns an optional string argument.
func (a Args) StringDefault(key, def string) (string, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string, got %v", key, v)
	}
	return s, nil
}

// Bool returns a required boolean argument.
func (a Args) Bool(key string) (bool, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return false, fmt.Errorf("missing required argument: %s", key)
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean, got %v", key, v)
	}
	return b, nil
}

// BoolDefault returns an optional boolean argument.
func (a Args) BoolDefault(key string, def bool) (bool, error) {
	if v, ok := a[key]; !ok || v == nil {
		return def, nil
	}
	return a.Bool(key)
}

// Point returns a required [x,y,z] point argument.
func (a Args) Point(key string) (cadwork.Point, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return cadwork.Point{}, fmt.Errorf("missing required argument: %s", key)
	}
	p, err := cadwork.ParsePoint(v)
	if err != nil {
		return cadwork.Point{}, fmt.Errorf("%s: %w", key, err)
	}
	return p, nil
}

// OptionalPoint returns the point under key, or nil when absent.
func (a Args) OptionalPoint(key string) (*cadwork.Point, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	p, err := cadwork.ParsePoint(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	return &p, nil
}

// Points returns a required list of [x,y,z] points.
func (a Args) Points(key string) ([]cadwork.Point, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, fmt.Errorf("missing required argument: %s", key)
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list of [x, y, z] points", key)
	}
	pts := make([]cadwork.Point, 0, len(raw))
	for _, item := range raw {
		p, err := cadwork.ParsePoint(item)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// Floats returns an optional list of numbers.
func (a Args) Floats(key string) ([]float64, error) {
	v, ok := a[key]
	if !ok || v == nil {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s must be a list of numbers", key)
	}
	out := make([]float64, 0, len(raw))
	for _, item := range raw {
		f, ok := toFloat(item)
		if !ok {
			return nil, fmt.Errorf("invalid number in %s: %v", key, item)
		}
		out = append(out, f)
	}
	return out, nil
}

// Decode fills an option struct from the params map. The target sets
// its defaults before decoding; weak typing tolerates agents sending
// numbers as strings or ints as floats.
func (a Args) Decode(target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
		TagName:          "json",
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(map[string]any(a)); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
