package configuration

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/go-viper/mapstructure/v2"
)

// curvePointsHookFunc returns a mapstructure decode hook that accepts curve
// points written as a YAML map (`{0: 0, 50: 20, 100: 100}`) in addition to
// the canonical list-of-pairs form, and decodes both into an x-sorted
// CurvePointsConfig.
func curvePointsHookFunc() mapstructure.DecodeHookFuncType {
	pointsType := reflect.TypeOf(CurvePointsConfig{})

	return func(
		f reflect.Type,
		t reflect.Type,
		data interface{},
	) (interface{}, error) {
		if t != pointsType {
			return data, nil
		}

		switch v := data.(type) {
		case map[string]interface{}:
			return pointMapToPairs(toInterfaceKeys(v))
		case map[interface{}]interface{}:
			return pointMapToPairs(v)
		}
		return data, nil
	}
}

func toInterfaceKeys(m map[string]interface{}) map[interface{}]interface{} {
	result := make(map[interface{}]interface{}, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

func pointMapToPairs(m map[interface{}]interface{}) (CurvePointsConfig, error) {
	points := make(CurvePointsConfig, 0, len(m))
	for k, v := range m {
		x, err := anyToFloat(k)
		if err != nil {
			return nil, fmt.Errorf("invalid point x %v: %w", k, err)
		}
		y, err := anyToFloat(v)
		if err != nil {
			return nil, fmt.Errorf("invalid point y %v: %w", v, err)
		}
		points = append(points, [2]float64{x, y})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i][0] < points[j][0]
	})
	return points, nil
}

// anyToFloat converts numeric and string values to float64.
func anyToFloat(v interface{}) (float64, error) {
	switch val := v.(type) {
	case int:
		return float64(val), nil
	case int64:
		return float64(val), nil
	case float64:
		return val, nil
	case string:
		n, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as float: %w", val, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to float", v)
	}
}
