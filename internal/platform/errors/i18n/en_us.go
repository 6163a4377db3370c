package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeUnknown              = "UNKNOWN"
	CodeFormat               = "FORMAT"
	CodeTypeMismatch         = "TYPE_MISMATCH"
	CodeCoverage             = "COVERAGE"
	CodeOverlap              = "OVERLAP"
	CodeInvariantViolation   = "INVARIANT_VIOLATION"
	CodeCommandNotRecognized = "COMMAND_NOT_RECOGNIZED"
	CodeCommandEmpty         = "COMMAND_EMPTY"
)

var enUSCatalog = NewCatalog(BaseLocale, map[string]string{
	CodeUnknown:              "An unexpected error occurred",
	CodeFormat:               "{{if .Table}}Table {{.Table}}: {{end}}{{.Value}} is not a valid {{.Kind}}",
	CodeTypeMismatch:         "{{if .Table}}Table {{.Table}}: {{end}}range bound of type {{.Type}} is not an integer",
	CodeCoverage:             "Table {{.Table}} does not exactly cover {{.Dice}}: {{.Detail}}",
	CodeOverlap:              "Table {{.Table}} covers roll {{.Value}} more than once",
	CodeInvariantViolation:   "Table {{.Table}} has no entry for roll {{.Value}}",
	CodeCommandNotRecognized: "Command not understood: {{.Command}}",
	CodeCommandEmpty:         "Command text is required",
})
