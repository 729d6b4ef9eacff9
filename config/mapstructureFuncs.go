package config

import (
	"fmt"
	"github.com/Maldris/mathparse"
	"github.com/mitchellh/mapstructure"
	"reflect"
	"strconv"
	"strings"
)

// MapstructureStringToFloat64Expr allows float settings such as page sizes to be written as expressions, e.g. "210 / 25.4".
func MapstructureStringToFloat64Expr() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.Float64 {
			return data, nil
		}

		raw := strings.TrimSpace(data.(string))
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return v, nil
		}
		val, err := parseMathExpression(raw)
		if err != nil {
			return nil, err
		}
		return *val, nil
	}
}

func parseMathExpression(expr string) (*float64, error) {
	p := mathparse.NewParser(expr)
	p.Resolve()
	if p.FoundResult() {
		val := p.GetValueResult()
		return &val, nil
	}

	return nil, fmt.Errorf("unable to parse expression %s", expr)
}

// MapstructureStringToColor decodes a named color, a "#rrggbb" string or a "r,g,b" hex triplet.
func MapstructureStringToColor() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(Color{}) {
			return data, nil
		}

		return parseColor(data.(string))
	}
}

func parseColor(raw string) (Color, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))

	c, ok := Colors[raw]
	if ok {
		return c, nil
	}

	var strs []string
	if strings.HasPrefix(raw, "#") {
		hex := raw[1:]
		switch len(hex) {
		case 3:
			strs = []string{hex[0:1] + hex[0:1], hex[1:2] + hex[1:2], hex[2:3] + hex[2:3]}
		case 6:
			strs = []string{hex[0:2], hex[2:4], hex[4:6]}
		default:
			return Color{}, fmt.Errorf("unable to decode color %s (format: #rrggbb)", raw)
		}
	} else {
		strs = strings.Split(raw, ",")
		if len(strs) != 3 {
			return Color{}, fmt.Errorf("unable to decode color %s (format: r,g,b)", raw)
		}
	}

	rgb := make([]uint8, 3)
	for i := 0; i < 3; i++ {
		ui64, err := strconv.ParseUint(strings.TrimSpace(strs[i]), 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("unable to decode color value %s", strs[i])
		}
		rgb[i] = uint8(ui64)
	}

	return Color{rgb[0], rgb[1], rgb[2]}, nil
}

func MapstructureStringToOrientation() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t != reflect.TypeOf(Orientation("")) {
			return data, nil
		}

		raw := strings.ToLower(data.(string))
		if raw != string(Portrait) && raw != string(Landscape) {
			return nil, fmt.Errorf("orientation can only be portrait or landscape")
		}

		return Orientation(raw), nil
	}
}
