package pedals

import "errors"

var (
	// ErrInvalidRange indicates a rejected min/max edit (non-increasing bounds).
	ErrInvalidRange = errors.New("invalid axis range: min must be smaller than max")
	// ErrCurveNotFound indicates that no curve with the requested name exists.
	ErrCurveNotFound = errors.New("curve not found")
	// ErrCurveInvalid indicates a curve file that exists but cannot be used.
	ErrCurveInvalid = errors.New("curve file is invalid")
	// ErrInvalidCurve indicates an attempted save with too few valid points.
	ErrInvalidCurve = errors.New("curve must have at least 2 valid points")
	// ErrInvalidMapping indicates an axis index outside the attached device's range.
	ErrInvalidMapping = errors.New("axis index is not available on this device")
	// ErrDeviceUnavailable indicates that no physical or virtual device could be used.
	ErrDeviceUnavailable = errors.New("device unavailable")
)
