package utils

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type number interface {
	integer | ~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Fits reports whether v converts to To and back without changing value or sign.
func Fits[To, From integer](v From) bool {
	converted := To(v)

	return From(converted) == v && (v < 0) == (converted < 0)
}
