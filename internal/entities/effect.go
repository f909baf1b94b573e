package entities

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KirkDiggler/quest-chronicles/internal/errors"
)

// Stat is a character attribute an item effect may modify
type Stat string

// Modifiable stats
const (
	StatHealth   Stat = "health"
	StatStrength Stat = "strength"
	StatMagic    Stat = "magic"
)

// Effect is a signed delta to one stat, written as "<stat>:<delta>"
type Effect struct {
	Stat  Stat
	Value int
}

// ParseEffect parses an effect string such as "strength:+3"
func ParseEffect(raw string) (Effect, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return Effect{}, errors.InvalidEffectFormatf("effect %q must be <stat>:<value>", raw)
	}

	stat := Stat(strings.ToLower(strings.TrimSpace(parts[0])))
	switch stat {
	case StatHealth, StatStrength, StatMagic:
	default:
		return Effect{}, errors.InvalidEffectFormatf("unknown stat %q", parts[0]).
			WithMeta("effect", raw)
	}

	value, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Effect{}, errors.WrapWithCodef(err, errors.CodeInvalidEffectFormat,
			"effect value %q is not an integer", parts[1])
	}

	return Effect{Stat: stat, Value: value}, nil
}

// Inverse returns the effect that undoes e
func (e Effect) Inverse() Effect {
	return Effect{Stat: e.Stat, Value: -e.Value}
}

func (e Effect) String() string {
	return fmt.Sprintf("%s:%+d", e.Stat, e.Value)
}
