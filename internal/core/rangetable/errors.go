package rangetable

import (
	"fmt"

	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
)

// Sentinels for errors.Is. Any error carrying the same code matches.
var (
	// ErrFormat reports a dice spec or range string that fails its grammar.
	ErrFormat = apperrors.New(apperrors.CodeFormat, "format error")
	// ErrTypeMismatch reports a range bound that is not an integer.
	ErrTypeMismatch = apperrors.New(apperrors.CodeTypeMismatch, "type mismatch")
	// ErrCoverage reports totals the entries miss or reach past.
	ErrCoverage = apperrors.New(apperrors.CodeCoverage, "range coverage error")
	// ErrOverlap reports a total covered by more than one entry.
	ErrOverlap = apperrors.New(apperrors.CodeOverlap, "range overlap error")
	// ErrInvariantViolation is the panic value of a lookup outside the
	// table's validated domain.
	ErrInvariantViolation = apperrors.New(apperrors.CodeInvariantViolation, "invariant violation")
)

func formatError(value, kind, table string) *apperrors.Error {
	msg := fmt.Sprintf("invalid %s %q", kind, value)
	if table != "" {
		msg = "table " + table + ": " + msg
	}
	return apperrors.WithMetadata(apperrors.CodeFormat, msg, map[string]string{
		"Table": table,
		"Value": value,
		"Kind":  kind,
	})
}

func typeMismatch(v any) *apperrors.Error {
	typ := fmt.Sprintf("%T", v)
	return apperrors.WithMetadata(apperrors.CodeTypeMismatch,
		fmt.Sprintf("range bound of type %s is not an integer", typ),
		map[string]string{"Type": typ})
}

// inTable attaches the table name to a construction error.
func inTable(err error, table string) error {
	appErr, ok := err.(*apperrors.Error)
	if !ok {
		return err
	}
	md := make(map[string]string, len(appErr.Metadata)+1)
	for k, v := range appErr.Metadata {
		md[k] = v
	}
	md["Table"] = table
	return &apperrors.Error{
		Code:     appErr.Code,
		Message:  "table " + table + ": " + appErr.Message,
		Metadata: md,
		Cause:    appErr.Cause,
	}
}

func coverageError(table, dice, detail string) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeCoverage,
		fmt.Sprintf("table %s does not exactly cover %s: %s", table, dice, detail),
		map[string]string{"Table": table, "Dice": dice, "Detail": detail})
}

func overlapError(table string, value int) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeOverlap,
		fmt.Sprintf("table %s covers roll %d more than once", table, value),
		map[string]string{"Table": table, "Value": fmt.Sprint(value)})
}

func invariantViolation(table string, total int) *apperrors.Error {
	return apperrors.WithMetadata(apperrors.CodeInvariantViolation,
		fmt.Sprintf("table %s has no entry for roll %d", table, total),
		map[string]string{"Table": table, "Value": fmt.Sprint(total)})
}
