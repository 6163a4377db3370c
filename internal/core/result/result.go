// Package result holds the rendering record produced by every command.
package result

// Arrow separates the stages of a rendered result.
const Arrow = " ＞ "

// Result is what a command evaluation hands to the display layer.
// Secret results are shown only to the requester; enforcing that is the
// renderer's job.
type Result struct {
	Secret bool
	Text   string
}

// New returns a Result with the given visibility and text.
func New(secret bool, text string) Result {
	return Result{Secret: secret, Text: text}
}

// Format renders "(<expr>) ＞ <stage> ＞ <stage>...".
func Format(expr string, stages ...string) string {
	text := "(" + expr + ")"
	for _, stage := range stages {
		text += Arrow + stage
	}
	return text
}
