package dicebot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	dicegrpc "github.com/louisbranch/dicebot/internal/services/dice/api/grpc"
)

type repl struct {
	eval   evaluator
	secret *color.Color
	notice *color.Color
	failed *color.Color
}

func newREPL(eval evaluator, noColor bool) *repl {
	r := &repl{
		eval:   eval,
		secret: color.New(color.FgYellow),
		notice: color.New(color.Faint),
		failed: color.New(color.FgRed),
	}
	if noColor {
		r.secret.DisableColor()
		r.notice.DisableColor()
		r.failed.DisableColor()
	}
	return r
}

// serve evaluates one command per input line. Secret results are marked,
// since the terminal is shown only to its user.
func (r *repl) serve(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		res, ok, err := r.eval.evaluate(ctx, text)
		switch {
		case err != nil:
			r.failed.Fprintln(out, dicegrpc.UserMessage(err))
		case !ok:
			r.notice.Fprintln(out, apperrors.UserMessage(apperrors.WithMetadata(
				apperrors.CodeCommandNotRecognized, "command not recognized",
				map[string]string{"Command": text},
			)))
		case res.Secret:
			r.secret.Fprintln(out, "[secret] "+res.Text)
		default:
			fmt.Fprintln(out, res.Text)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
