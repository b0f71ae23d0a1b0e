package slayer

import "errors"

// Calculation errors. All of them are deterministic validation failures,
// so callers report them and never retry.
var (
	// ErrOutOfRange is returned for a level outside the level table.
	ErrOutOfRange = errors.New("level out of range")

	// ErrInvalidRange is returned when the current level is not below the target.
	ErrInvalidRange = errors.New("invalid level range")

	// ErrInvalidDeficit is returned when the XP to cover is not positive.
	ErrInvalidDeficit = errors.New("invalid xp deficit")

	// ErrUnknownSlayerType is returned when a slayer ID is not in the catalog.
	ErrUnknownSlayerType = errors.New("unknown slayer type")

	// ErrNoViableTier is returned when no tier can be bought for XP.
	ErrNoViableTier = errors.New("no viable carry tier")
)

// Error kind names reported to the presentation layer.
const (
	KindOutOfRange        = "OutOfRangeError"
	KindInvalidRange      = "InvalidRangeError"
	KindInvalidDeficit    = "InvalidDeficitError"
	KindUnknownSlayerType = "UnknownSlayerTypeError"
	KindNoViableTier      = "NoViableTierError"
	KindInternal          = "InternalError"
)

// Kind maps an error to its kind name.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrOutOfRange):
		return KindOutOfRange
	case errors.Is(err, ErrInvalidRange):
		return KindInvalidRange
	case errors.Is(err, ErrInvalidDeficit):
		return KindInvalidDeficit
	case errors.Is(err, ErrUnknownSlayerType):
		return KindUnknownSlayerType
	case errors.Is(err, ErrNoViableTier):
		return KindNoViableTier
	default:
		return KindInternal
	}
}
