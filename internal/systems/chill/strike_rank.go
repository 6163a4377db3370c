package chill

import (
	"fmt"
	"strconv"

	"github.com/louisbranch/dicebot/internal/core/dice"
	"github.com/louisbranch/dicebot/internal/core/random"
	"github.com/louisbranch/dicebot/internal/core/result"
)

// MaxStrikeRank is the highest strike rank whose extra wound dice still fit
// in one roll.
const MaxStrikeRank = 13 + random.MaxTimes/2

// woundOffset is how many ranks lower wounds are read from the chart.
const woundOffset = 3

// StrikeRank resolves damage for a strike rank.
//
// Below rank 14 stamina loss is read from the chart at the rank and wounds
// three ranks lower. From rank 14 stamina loss stays at the rank 13 row and
// wounds are 4d10 plus two extra d10 per rank above 13.
type StrikeRank struct {
	Secret bool
	Rank   int
}

// damage is one chart read: the dice label, the rolled faces, the
// arithmetic applied to them and the resulting damage.
type damage struct {
	dice   string
	trace  string
	sum    string
	amount int
}

// chart reads the strike rank chart.
func chart(rank int, d random.Drawer) damage {
	switch {
	case rank < 1:
		return damage{dice: "-", trace: "-", sum: "-"}
	case rank == 1:
		roll := dice.RollSpec(dice.Spec{Count: 1, Sides: 2}, d)
		return damage{dice: "0or1", trace: roll.Trace(), sum: strconv.Itoa(roll.Total - 1), amount: roll.Total - 1}
	case rank == 2:
		roll := dice.RollSpec(dice.Spec{Count: 1, Sides: 2}, d)
		return damage{dice: "1or2", trace: roll.Trace(), sum: strconv.Itoa(roll.Total), amount: roll.Total}
	case rank == 3:
		roll := dice.RollSpec(dice.Spec{Count: 1, Sides: 5}, d)
		return damage{dice: "1d5", trace: roll.Trace(), sum: strconv.Itoa(roll.Total), amount: roll.Total}
	case rank < 10:
		return multiplied(rank-3, 1, d)
	case rank < 13:
		return multiplied(rank-6, 2, d)
	default:
		return multiplied(5, 3, d)
	}
}

func multiplied(count, factor int, d random.Drawer) damage {
	roll := dice.RollSpec(dice.Spec{Count: count, Sides: 10}, d)
	if factor == 1 {
		return damage{
			dice:   fmt.Sprintf("%dd10", count),
			trace:  roll.Trace(),
			sum:    strconv.Itoa(roll.Total),
			amount: roll.Total,
		}
	}
	return damage{
		dice:   fmt.Sprintf("%dd10*%d", count, factor),
		trace:  fmt.Sprintf("(%s)*%d", roll.Trace(), factor),
		sum:    fmt.Sprintf("%d*%d", roll.Total, factor),
		amount: roll.Total * factor,
	}
}

// Expr renders the normalized command, e.g. "SR7".
func (s StrikeRank) Expr() string {
	return "SR" + strconv.Itoa(s.Rank)
}

// Evaluate implements command.Command.
func (s StrikeRank) Evaluate(d random.Drawer) result.Result {
	var stamina, wounds damage
	if s.Rank < 14 {
		stamina = chart(s.Rank, d)
		wounds = chart(s.Rank-woundOffset, d)
	} else {
		stamina = chart(13, d)
		extra := (s.Rank - 13) * 2
		base := dice.RollSpec(dice.Spec{Count: 4, Sides: 10}, d)
		more := dice.RollSpec(dice.Spec{Count: extra, Sides: 10}, d)
		wounds = damage{
			dice:   fmt.Sprintf("4d10+%dd10", extra),
			trace:  base.Trace() + "+" + more.Trace(),
			sum:    fmt.Sprintf("%d+%d", base.Total, more.Total),
			amount: base.Total + more.Total,
		}
	}

	text := result.Format(
		s.Expr()+":"+stamina.dice+", "+wounds.dice,
		stamina.trace+", "+wounds.trace,
		stamina.sum+", "+wounds.sum,
		fmt.Sprintf("Stamina loss %d, Wounds %d", stamina.amount, wounds.amount),
	)
	return result.New(s.Secret, text)
}
