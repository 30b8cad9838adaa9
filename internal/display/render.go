// Package display renders conversion results, unit listings, and warnings
// for the terminal. Text output matches the classic converter format; table,
// JSON, and YAML encodings are available for scripted use.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/unitconv/internal/units"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// Supported output formats.
const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// ParseFormat validates a format name, defaulting empty input to text.
func ParseFormat(name string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	switch normalized {
	case "":
		return FormatText, nil
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return normalized, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: text, table, json, yaml)", name)
}

// Conversion is one conversion outcome ready for rendering. FromLabel and
// ToLabel hold the unit names as the user typed them, so the printed line
// echoes the original input.
type Conversion struct {
	Input     float64 `json:"input" yaml:"input"`
	FromLabel string  `json:"from" yaml:"from"`
	Output    float64 `json:"output" yaml:"output"`
	ToLabel   string  `json:"to" yaml:"to"`
}

// FormatValue renders a float for display. A negative precision selects the
// shortest representation that round-trips; otherwise the value is fixed to
// precision decimal places.
func FormatValue(v float64, precision int) string {
	if precision < 0 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// WriteConversion renders a conversion outcome to w in the given format.
// Precision applies to the text and table forms; JSON and YAML always carry
// the full values.
func WriteConversion(w io.Writer, c Conversion, format string, precision int) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, c)
	case FormatYAML:
		return writeYAML(w, c)
	case FormatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Input", "From", "Result", "To"})
		t.AppendRow(table.Row{
			FormatValue(c.Input, precision), c.FromLabel,
			FormatValue(c.Output, precision), c.ToLabel,
		})
		t.Render()
		return nil
	default:
		_, err := fmt.Fprintf(w, "%s %s = %s %s\n",
			FormatValue(c.Input, precision), c.FromLabel,
			FormatValue(c.Output, precision), c.ToLabel)
		return err
	}
}

// listGroup and listUnit are the machine-readable projection of the registry
// used by the JSON and YAML listings.
type listGroup struct {
	Category string     `json:"category" yaml:"category"`
	Units    []listUnit `json:"units" yaml:"units"`
}

type listUnit struct {
	Name    string   `json:"name" yaml:"name"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// WriteUnitList renders the grouped unit registry to w in the given format.
func WriteUnitList(w io.Writer, groups []units.Group, format string) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, projectGroups(groups))
	case FormatYAML:
		return writeYAML(w, projectGroups(groups))
	case FormatTable:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Category", "Unit", "Aliases"})
		for _, g := range groups {
			for _, u := range g.Units {
				t.AppendRow(table.Row{g.Category.String(), u.Name, strings.Join(u.Aliases, ", ")})
			}
			t.AppendSeparator()
		}
		t.Render()
		return nil
	default:
		return writeUnitListText(w, groups)
	}
}

// writeUnitListText renders the classic plain listing: a header, then each
// category with its units and their aliases in parentheses.
func writeUnitListText(w io.Writer, groups []units.Group) error {
	if _, err := fmt.Fprintf(w, "Supported units:\n\n"); err != nil {
		return err
	}
	for _, g := range groups {
		if _, err := fmt.Fprintf(w, "%s:\n", g.Category); err != nil {
			return err
		}
		for _, u := range g.Units {
			if len(u.Aliases) > 0 {
				if _, err := fmt.Fprintf(w, "  %s (%s)\n", u.Name, strings.Join(u.Aliases, ", ")); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(w, "  %s\n", u.Name); err != nil {
					return err
				}
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func projectGroups(groups []units.Group) []listGroup {
	out := make([]listGroup, 0, len(groups))
	for _, g := range groups {
		lg := listGroup{Category: g.Category.String()}
		for _, u := range g.Units {
			lg.Units = append(lg.Units, listUnit{Name: u.Name, Aliases: u.Aliases})
		}
		out = append(out, lg)
	}
	return out
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(v)
}
