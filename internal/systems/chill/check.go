package chill

import (
	"strconv"

	"github.com/louisbranch/dicebot/internal/core/check"
	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/core/random"
	"github.com/louisbranch/dicebot/internal/core/result"
)

// Level is the degree of a percentile check.
type Level int

const (
	LevelFailure Level = iota
	LevelFumble
	LevelLow
	LevelMedium
	LevelHigh
	LevelColossal
)

func (l Level) String() string {
	switch l {
	case LevelFailure:
		return "Failure"
	case LevelFumble:
		return "Fumble"
	case LevelLow:
		return "Low success"
	case LevelMedium:
		return "Medium success"
	case LevelHigh:
		return "High success"
	case LevelColossal:
		return "Colossal success"
	default:
		return "Unknown"
	}
}

var percentile = dice.Spec{Count: 1, Sides: 100}

// ResolveLevel grades a 1d100 total against target. A 100 always fumbles;
// a success is better the further under the target it lands.
func ResolveLevel(total, target int) Level {
	if total >= 100 {
		return LevelFumble
	}
	if !check.CheckUnder(total, target).Success {
		return LevelFailure
	}
	switch {
	case total >= target-target/10:
		return LevelLow
	case total >= target/2:
		return LevelMedium
	case total >= target/10:
		return LevelHigh
	default:
		return LevelColossal
	}
}

// Check is a percentile roll against a target.
type Check struct {
	Secret bool
	Target int
}

// Expr renders the normalized command, e.g. "CH50".
func (c Check) Expr() string {
	return "CH" + strconv.Itoa(c.Target)
}

// Evaluate implements command.Command.
func (c Check) Evaluate(d random.Drawer) result.Result {
	roll := dice.RollSpec(percentile, d)
	level := ResolveLevel(roll.Total, c.Target)
	return result.New(c.Secret, result.Format(c.Expr(), strconv.Itoa(roll.Total), level.String()))
}
