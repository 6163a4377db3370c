package choice

import (
	"testing"

	"github.com/louisbranch/dicebot/internal/core/random"
	"github.com/louisbranch/dicebot/internal/core/random/randomtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
	}{
		{
			name: "bracket",
			text: "choice[A,B,C,D]",
			want: Command{Delimiter: Bracket, Takes: 1, Items: []string{"A", "B", "C", "D"}},
		},
		{
			name: "paren",
			text: "choice(A,B,C,D)",
			want: Command{Delimiter: Paren, Takes: 1, Items: []string{"A", "B", "C", "D"}},
		},
		{
			name: "space with count",
			text: "choice2 A B C",
			want: Command{Delimiter: Space, Takes: 2, Items: []string{"A", "B", "C"}},
		},
		{
			name: "items are trimmed",
			text: "choice[A, B,  C , D   ]",
			want: Command{Delimiter: Bracket, Takes: 1, Items: []string{"A", "B", "C", "D"}},
		},
		{
			name: "empty items are dropped",
			text: "choice[A,,C]",
			want: Command{Delimiter: Bracket, Takes: 1, Items: []string{"A", "C"}},
		},
		{
			name: "secret",
			text: "Schoice[A,B]",
			want: Command{Secret: true, Delimiter: Bracket, Takes: 1, Items: []string{"A", "B"}},
		},
		{
			name: "lower secret and mixed case keyword",
			text: "sChOiCe[A,B]",
			want: Command{Secret: true, Delimiter: Bracket, Takes: 1, Items: []string{"A", "B"}},
		},
		{
			name: "leading whitespace",
			text: "  choice[A,B]",
			want: Command{Delimiter: Bracket, Takes: 1, Items: []string{"A", "B"}},
		},
		{
			name: "space items keep commas",
			text: "choice A,B X,Y",
			want: Command{Delimiter: Space, Takes: 1, Items: []string{"A,B", "X,Y"}},
		},
		{
			name: "paren items keep brackets",
			text: "choice(A[], B[], C[])",
			want: Command{Delimiter: Paren, Takes: 1, Items: []string{"A[]", "B[]", "C[]"}},
		},
		{
			name: "bracket items keep parens",
			text: "choice[A(), B(), C()]",
			want: Command{Delimiter: Bracket, Takes: 1, Items: []string{"A()", "B()", "C()"}},
		},
		{
			name: "space runs collapse",
			text: "choice   A \t B  ",
			want: Command{Delimiter: Space, Takes: 1, Items: []string{"A", "B"}},
		},
		{
			name: "text after closing bracket is ignored",
			text: "choice[A,B] please",
			want: Command{Delimiter: Bracket, Takes: 1, Items: []string{"A", "B"}},
		},
		{
			name: "count equals items",
			text: "choice3(A,B,C)",
			want: Command{Delimiter: Paren, Takes: 3, Items: []string{"A", "B", "C"}},
		},
		{
			name: "multibyte items",
			text: "choice(新クトゥルフ神話TRPG, ソード・ワールド2.5, Dungeons & Dragons)",
			want: Command{Delimiter: Paren, Takes: 1, Items: []string{"新クトゥルフ神話TRPG", "ソード・ワールド2.5", "Dungeons & Dragons"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"no keyword", "roll[A,B]"},
		{"keyword only", "choice"},
		{"zero count", "choice0[A,B]"},
		{"count exceeds items", "choice3[A,B]"},
		{"unknown opener", "choice{A,B}"},
		{"unterminated bracket", "choice[A,B"},
		{"unterminated paren", "choice(A,B"},
		{"only empty items", "choice[ , ,]"},
		{"space with nothing", "choice   "},
		{"keyword not at start", "x choice[A]"},
		{"huge count", "choice99999999999999999999[A]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Parse(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestExpr(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"choice[A, B,  C , D   ]", "choice[A,B,C,D]"},
		{"choice(A,,B)", "choice(A,B)"},
		{"choice   A   B", "choice A B"},
		{"Schoice2[A,B,C]", "choice2[A,B,C]"},
		{"CHOICE1 A B", "choice A B"},
	}
	for _, tt := range tests {
		cmd, ok := Parse(tt.text)
		require.True(t, ok, tt.text)
		assert.Equal(t, tt.want, cmd.Expr(), tt.text)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		faces  []int
		want   string
		secret bool
	}{
		{"bracket single", "choice[A,B,C,D]", []int{2}, "(choice[A,B,C,D]) ＞ B", false},
		{"paren multiple", "choice2(A,B,C)", []int{3, 1}, "(choice2(A,B,C)) ＞ C, A", false},
		{"space multiple", "choice2 A B C", []int{1, 2}, "(choice2 A B C) ＞ A C", false},
		{"secret", "Schoice[A,B]", []int{1}, "(choice[A,B]) ＞ A", true},
		{"all items", "choice3[A,B,C]", []int{2, 2, 1}, "(choice3[A,B,C]) ＞ B, C, A", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := Parse(tt.text)
			require.True(t, ok)

			res := cmd.Evaluate(randomtest.New(tt.faces...))
			assert.Equal(t, tt.want, res.Text)
			assert.Equal(t, tt.secret, res.Secret)
		})
	}
}

func TestDrawIsWithoutReplacement(t *testing.T) {
	cmd, ok := Parse("choice2 A B C")
	require.True(t, ok)

	r := random.NewSeeded(2024)
	for i := 0; i < 500; i++ {
		chosen := cmd.Draw(r)
		require.Len(t, chosen, 2)
		assert.NotEqual(t, chosen[0], chosen[1])
		assert.Subset(t, cmd.Items, chosen)
	}
}

func TestDrawDoesNotMutateItems(t *testing.T) {
	cmd, ok := Parse("choice3[A,B,C]")
	require.True(t, ok)

	cmd.Draw(randomtest.New(1, 1, 1))
	assert.Equal(t, []string{"A", "B", "C"}, cmd.Items)
}

func TestHandler(t *testing.T) {
	h := Handler{}
	assert.Equal(t, "choice", h.Name())

	cmd, ok := h.TryMatch("choice[A]")
	require.True(t, ok)
	assert.Equal(t, "(choice[A]) ＞ A", cmd.Evaluate(randomtest.New(1)).Text)

	_, ok = h.TryMatch("SR7")
	assert.False(t, ok)
}

func TestDelimiterString(t *testing.T) {
	assert.Equal(t, "bracket", Bracket.String())
	assert.Equal(t, "paren", Paren.String())
	assert.Equal(t, "space", Space.String())
	assert.Equal(t, "unknown", Delimiter(9).String())
}
