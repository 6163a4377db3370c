// Package tables serves named range tables declared in YAML.
//
// A tables file lists each table's command, display name, dice and entries:
//
//	tables:
//	  - command: WEATHER
//	    name: Weather
//	    dice: 2D6
//	    entries:
//	      - range: "2..7"
//	        outcome: Rain
//	      - range: "8..12"
//	        outcome: Sun
//
// Ranges take any form rangetable.ConvStringRange accepts. Every table is
// validated when the file is loaded; one broken table fails the whole load.
package tables

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/louisbranch/dicebot/internal/core/command"
	"github.com/louisbranch/dicebot/internal/core/random"
	"github.com/louisbranch/dicebot/internal/core/rangetable"
	"github.com/louisbranch/dicebot/internal/core/result"
	apperrors "github.com/louisbranch/dicebot/internal/platform/errors"
	"gopkg.in/yaml.v3"
)

//go:embed default_tables.yaml
var defaultTables string

var commandName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

type fileSpec struct {
	Tables []tableSpec `yaml:"tables"`
}

type tableSpec struct {
	Command string      `yaml:"command"`
	Name    string      `yaml:"name"`
	Dice    string      `yaml:"dice"`
	Entries []entrySpec `yaml:"entries"`
}

type entrySpec struct {
	Range   any    `yaml:"range"`
	Outcome string `yaml:"outcome"`
}

// Registry holds validated tables by command.
type Registry struct {
	byCommand map[string]*rangetable.Table[string]
	commands  []string
}

// Load parses and validates a tables file.
func Load(r io.Reader) (*Registry, error) {
	var file fileSpec
	if err := yaml.NewDecoder(r).Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode tables: %w", err)
	}

	reg := &Registry{byCommand: make(map[string]*rangetable.Table[string], len(file.Tables))}
	var errs *multierror.Error
	for i, spec := range file.Tables {
		key := strings.ToUpper(spec.Command)
		if !commandName.MatchString(spec.Command) {
			errs = multierror.Append(errs, apperrors.WithMetadata(apperrors.CodeFormat,
				fmt.Sprintf("table #%d: invalid command %q", i+1, spec.Command),
				map[string]string{"Table": spec.Name, "Value": spec.Command, "Kind": "table command"}))
			continue
		}
		if _, dup := reg.byCommand[key]; dup {
			errs = multierror.Append(errs, apperrors.WithMetadata(apperrors.CodeFormat,
				fmt.Sprintf("table #%d: duplicate command %q", i+1, spec.Command),
				map[string]string{"Table": spec.Name, "Value": spec.Command, "Kind": "unique table command"}))
			continue
		}
		name := spec.Name
		if name == "" {
			name = key
		}

		entries := make([]rangetable.Entry[string], len(spec.Entries))
		for j, e := range spec.Entries {
			entries[j] = rangetable.Entry[string]{Range: e.Range, Outcome: e.Outcome}
		}
		table, err := rangetable.New(name, spec.Dice, entries)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}
		reg.byCommand[key] = table
		reg.commands = append(reg.commands, key)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	sort.Strings(reg.commands)
	return reg, nil
}

// LoadFile loads a tables file from disk.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open tables: %w", err)
	}
	defer f.Close()
	reg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load tables %s: %w", path, err)
	}
	return reg, nil
}

// Default returns the tables embedded in the binary.
func Default() *Registry {
	reg, err := Load(strings.NewReader(defaultTables))
	if err != nil {
		panic(fmt.Sprintf("embedded tables: %v", err))
	}
	return reg
}

// Commands returns the registered commands in sorted order.
func (r *Registry) Commands() []string {
	return append([]string(nil), r.commands...)
}

// Table returns the table registered for command, ignoring case.
func (r *Registry) Table(cmd string) (*rangetable.Table[string], bool) {
	t, ok := r.byCommand[strings.ToUpper(cmd)]
	return t, ok
}

// Handler returns a command handler rolling the registered tables.
func (r *Registry) Handler() command.Handler {
	return handler{reg: r}
}

type handler struct {
	reg *Registry
}

func (handler) Name() string {
	return "tables"
}

// TryMatch recognizes "<COMMAND>" and the secret form "S<COMMAND>". A table
// whose own command starts with S wins over the secret reading.
func (h handler) TryMatch(text string) (command.Command, bool) {
	if !commandName.MatchString(text) {
		return nil, false
	}
	if t, ok := h.reg.Table(text); ok {
		return roll{command: strings.ToUpper(text), table: t}, true
	}
	if len(text) > 1 && (text[0] == 's' || text[0] == 'S') {
		if t, ok := h.reg.Table(text[1:]); ok {
			return roll{secret: true, command: strings.ToUpper(text[1:]), table: t}, true
		}
	}
	return nil, false
}

type roll struct {
	secret  bool
	command string
	table   *rangetable.Table[string]
}

func (c roll) Evaluate(d random.Drawer) result.Result {
	lookup := c.table.RollAndLookup(d)
	return result.New(c.secret, result.Format(c.command, lookup.String()))
}
