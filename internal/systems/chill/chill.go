// Package chill resolves commands for the Chill horror roleplaying game.
//
//	SR<n>   strike rank: stamina loss and wounds from the strike rank chart
//	CH<n>   percentile check against a target of n
//
// Both accept a leading "S" for a secret roll.
package chill

import (
	"regexp"
	"strconv"

	"github.com/louisbranch/dicebot/internal/core/command"
)

// GameSystem identifies the system in dispatch listings.
const GameSystem = "Chill"

var (
	strikeRankPattern = regexp.MustCompile(`(?i)^(s)?sr(\d+)$`)
	checkPattern      = regexp.MustCompile(`(?i)^(s)?ch(\d+)$`)
)

// Handlers returns the Chill command handlers in dispatch order.
func Handlers() []command.Handler {
	return []command.Handler{StrikeRankHandler{}, CheckHandler{}}
}

// StrikeRankHandler recognizes "SR<n>".
type StrikeRankHandler struct{}

// Name implements command.Handler.
func (StrikeRankHandler) Name() string {
	return "chill.strike_rank"
}

// TryMatch implements command.Handler.
func (StrikeRankHandler) TryMatch(text string) (command.Command, bool) {
	secret, rank, ok := matchNumber(strikeRankPattern, text)
	if !ok || rank > MaxStrikeRank {
		return nil, false
	}
	return StrikeRank{Secret: secret, Rank: rank}, true
}

// CheckHandler recognizes "CH<n>".
type CheckHandler struct{}

// Name implements command.Handler.
func (CheckHandler) Name() string {
	return "chill.check"
}

// TryMatch implements command.Handler.
func (CheckHandler) TryMatch(text string) (command.Command, bool) {
	secret, target, ok := matchNumber(checkPattern, text)
	if !ok {
		return nil, false
	}
	return Check{Secret: secret, Target: target}, true
}

func matchNumber(re *regexp.Regexp, text string) (secret bool, n int, ok bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return false, 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return false, 0, false
	}
	return m[1] != "", n, true
}
