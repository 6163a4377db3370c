// Package choice implements the "choice" command: pick items from an
// enumerated list without replacement.
//
// Accepted forms, case-insensitive, optionally prefixed with the secret
// marker "S" and an item count:
//
//	choice[A,B,C]      items separated by ",", closed by "]"
//	choice(A,B,C)      items separated by ",", closed by ")"
//	choice A B C       items separated by whitespace up to end of input
//	choice2[A,B,C]     draw two distinct items
//
// The delimiter style decides which characters may appear inside an item:
// "choice A,B X,Y" picks between "A,B" and "X,Y", and "choice(A[], B[])"
// picks between "A[]" and "B[]". Items are trimmed and empty items are
// dropped, so "choice[A, ,B ]" is "choice[A,B]".
package choice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/louisbranch/dicebot/internal/core/command"
	"github.com/louisbranch/dicebot/internal/core/random"
	"github.com/louisbranch/dicebot/internal/core/result"
	"github.com/louisbranch/dicebot/internal/core/textscan"
)

// Delimiter is the item list style chosen by the character after "choice".
type Delimiter int

const (
	// Bracket lists items as [A,B].
	Bracket Delimiter = iota
	// Paren lists items as (A,B).
	Paren
	// Space lists items as " A B".
	Space
)

var (
	leadingSpace = regexp.MustCompile(`^\s+`)
	secretMarker = regexp.MustCompile(`^[sS]`)
	takesDigits  = regexp.MustCompile(`^\d+`)
	opener       = regexp.MustCompile(`^(?:\(|\[|\s+)`)

	commaSep   = regexp.MustCompile(`,`)
	spaceSep   = regexp.MustCompile(`\s+`)
	closeBrack = regexp.MustCompile(`\]`)
	closeParen = regexp.MustCompile(`\)`)
	endOfInput = regexp.MustCompile(`$`)
)

// String names the delimiter style.
func (d Delimiter) String() string {
	switch d {
	case Bracket:
		return "bracket"
	case Paren:
		return "paren"
	case Space:
		return "space"
	default:
		return "unknown"
	}
}

func (d Delimiter) separator() *regexp.Regexp {
	if d == Space {
		return spaceSep
	}
	return commaSep
}

func (d Delimiter) termination() *regexp.Regexp {
	switch d {
	case Bracket:
		return closeBrack
	case Paren:
		return closeParen
	default:
		return endOfInput
	}
}

func (d Delimiter) suffix() string {
	switch d {
	case Bracket:
		return "]"
	case Paren:
		return ")"
	default:
		return ""
	}
}

// join is the string placed between chosen items in the output.
func (d Delimiter) join() string {
	if d == Space {
		return " "
	}
	return ", "
}

// Command is a parsed choice command.
type Command struct {
	Secret    bool
	Delimiter Delimiter
	Takes     int
	Items     []string
}

// Parse recognizes a choice command. It reports false, with no error, for
// any text that is not a well-formed choice command, so callers can move on
// to the next handler.
func Parse(text string) (Command, bool) {
	s := textscan.New(text)
	s.Skip(leadingSpace)

	secret := s.Skip(secretMarker)
	if !s.ScanLiteral("choice") {
		return Command{}, false
	}

	takes := 1
	if digits, ok := s.Scan(takesDigits); ok {
		n, err := strconv.Atoi(digits)
		if err != nil || n == 0 {
			return Command{}, false
		}
		takes = n
	}

	open, ok := s.Scan(opener)
	if !ok {
		return Command{}, false
	}
	var delim Delimiter
	switch open {
	case "[":
		delim = Bracket
	case "(":
		delim = Paren
	default:
		delim = Space
	}

	var raw []string
	for {
		item, ok := s.ScanUntil(delim.separator())
		if !ok {
			break
		}
		raw = append(raw, strings.TrimSuffix(item, ","))
	}
	last, ok := s.ScanUntil(delim.termination())
	if !ok {
		return Command{}, false
	}
	raw = append(raw, strings.TrimSuffix(last, delim.suffix()))

	items := make([]string, 0, len(raw))
	for _, item := range raw {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 || len(items) < takes {
		return Command{}, false
	}

	return Command{
		Secret:    secret,
		Delimiter: delim,
		Takes:     takes,
		Items:     items,
	}, true
}

// Expr renders the normalized command, e.g. "choice2[A,B,C]".
// The count is omitted when one item is drawn.
func (c Command) Expr() string {
	takes := ""
	if c.Takes != 1 {
		takes = strconv.Itoa(c.Takes)
	}

	switch c.Delimiter {
	case Bracket:
		return "choice" + takes + "[" + strings.Join(c.Items, ",") + "]"
	case Paren:
		return "choice" + takes + "(" + strings.Join(c.Items, ",") + ")"
	default:
		return "choice" + takes + " " + strings.Join(c.Items, " ")
	}
}

// Draw picks Takes distinct items. Each draw is uniform over the items not
// drawn yet.
func (c Command) Draw(d random.Drawer) []string {
	pool := append([]string(nil), c.Items...)
	chosen := make([]string, 0, c.Takes)
	for i := 0; i < c.Takes && len(pool) > 0; i++ {
		idx := d.RollIndex(len(pool))
		chosen = append(chosen, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return chosen
}

// Evaluate implements command.Command. Takes above one draw several times,
// so evaluate inside Randomizer.Do when d is a shared Randomizer.
func (c Command) Evaluate(d random.Drawer) result.Result {
	chosen := c.Draw(d)
	return result.New(c.Secret, result.Format(c.Expr(), strings.Join(chosen, c.Delimiter.join())))
}

// Handler plugs the choice grammar into a command.Dispatcher.
type Handler struct{}

// Name implements command.Handler.
func (Handler) Name() string {
	return "choice"
}

// TryMatch implements command.Handler.
func (Handler) TryMatch(text string) (command.Command, bool) {
	cmd, ok := Parse(text)
	if !ok {
		return nil, false
	}
	return cmd, true
}
