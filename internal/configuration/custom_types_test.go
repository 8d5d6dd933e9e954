package configuration

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodePoints(t *testing.T, data interface{}) (interface{}, error) {
	hook := curvePointsHookFunc()
	return hook(reflect.TypeOf(data), reflect.TypeOf(CurvePointsConfig{}), data)
}

func TestCurvePointsHookDecodesMapForm(t *testing.T) {
	// GIVEN
	data := map[interface{}]interface{}{
		100: 100,
		0:   0,
		50:  20,
	}

	// WHEN
	result, err := decodePoints(t, data)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, CurvePointsConfig{
		{0, 0},
		{50, 20},
		{100, 100},
	}, result)
}

func TestCurvePointsHookDecodesStringKeys(t *testing.T) {
	// GIVEN
	data := map[string]interface{}{
		"0":   0,
		"100": 80.5,
	}

	// WHEN
	result, err := decodePoints(t, data)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, CurvePointsConfig{
		{0, 0},
		{100, 80.5},
	}, result)
}

func TestCurvePointsHookRejectsNonNumericKeys(t *testing.T) {
	// GIVEN
	data := map[interface{}]interface{}{
		"low": 0,
	}

	// WHEN
	_, err := decodePoints(t, data)

	// THEN
	assert.Error(t, err)
}

func TestCurvePointsHookPassesThroughOtherTypes(t *testing.T) {
	// GIVEN
	data := []interface{}{[]interface{}{0, 0}}

	// WHEN
	result, err := decodePoints(t, data)

	// THEN
	assert.NoError(t, err)
	assert.Equal(t, data, result)
}
