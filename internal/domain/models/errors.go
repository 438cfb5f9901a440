package models

import "errors"

// Failure taxonomy. Each condition is detected at the boundary closest to its
// cause and surfaced as a typed error; none is ever downgraded to a placeholder
// value such as a substituted angle or a zero score.
var (
	// ErrInvalidLongitude: a non-finite angle reached zodiac mapping.
	ErrInvalidLongitude = errors.New("invalid longitude")

	// ErrUndefinedAscendant: house geometry requested at polar latitudes where
	// the ecliptic may not cross the horizon.
	ErrUndefinedAscendant = errors.New("ascendant undefined at this latitude")

	// ErrIncompleteEphemeris: fewer than ten bodies or twelve cusps supplied.
	ErrIncompleteEphemeris = errors.New("incomplete ephemeris data")

	// ErrEphemerisUnavailable: ephemeris source failure or timeout.
	ErrEphemerisUnavailable = errors.New("ephemeris unavailable")

	// ErrInvalidBirthData: coordinates out of range or date outside the
	// supported window.
	ErrInvalidBirthData = errors.New("invalid birth data")
)
