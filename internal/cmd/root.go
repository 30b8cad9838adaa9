// Package cmd wires the command-line surface: argument validation, unit
// resolution, conversion, and output rendering.
package cmd

import (
	"fmt"
	"strconv"

	"github.com/harrison/unitconv/internal/convert"
	"github.com/harrison/unitconv/internal/display"
	"github.com/harrison/unitconv/internal/logger"
	"github.com/harrison/unitconv/internal/units"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "3.0.0"

// NormalizeArgs inserts a "--" terminator before the first argument that
// parses as a negative number, so values like -273.15 reach the positional
// arguments instead of being rejected as unknown flags.
func NormalizeArgs(args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}
		if len(arg) > 1 && arg[0] == '-' {
			if _, err := strconv.ParseFloat(arg, 64); err == nil {
				out := make([]string, 0, len(args)+1)
				out = append(out, args[:i]...)
				out = append(out, "--")
				out = append(out, args[i:]...)
				return out
			}
		}
	}
	return args
}

// NewRootCommand creates and returns the root cobra command for unitconv
func NewRootCommand() *cobra.Command {
	var (
		listUnits bool
		format    string
		precision int
		logLevel  string
	)

	cmd := &cobra.Command{
		Use:   "unitconv <value> <from_unit> <to_unit>",
		Short: "Convert values between units of length, temperature, and mass",
		Long: `Unit Converter converts a numeric value between units of measurement.
Units within a category (Length, Temperature, Mass) are mutually
convertible through a common base unit.

Examples:
  unitconv 5 km mi
  unitconv 100 feet meters
  unitconv 100 C F
  unitconv 150 kg lb

Unit names are case-insensitive and support common aliases.`,
		Version: Version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, listUnits, format, precision, logLevel)
		},
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.SetVersionTemplate("Unit Converter v{{.Version}}\n")

	cmd.Flags().BoolVarP(&listUnits, "list", "l", false, "list all supported units grouped by category")
	cmd.Flags().StringVarP(&format, "format", "f", display.FormatText, "output format: text, table, json, yaml")
	cmd.Flags().IntVarP(&precision, "precision", "p", -1, "decimal places for results (-1 = shortest form)")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "diagnostic verbosity: trace, debug, info, warn, error")

	return cmd
}

// run executes either the unit listing or a single conversion.
func run(cmd *cobra.Command, args []string, listUnits bool, format string, precision int, logLevel string) error {
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), logLevel)

	outputFormat, err := display.ParseFormat(format)
	if err != nil {
		return err
	}

	if listUnits {
		return display.WriteUnitList(cmd.OutOrStdout(), units.ByCategory(), outputFormat)
	}

	if len(args) != 3 {
		return fmt.Errorf("expected 3 arguments, got %d\nUsage: unitconv <value> <from_unit> <to_unit>\nTry 'unitconv --help' for more information", len(args))
	}

	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("'%s' is not a valid number", args[0])
	}

	from, ok := units.Lookup(args[1])
	if !ok {
		return fmt.Errorf("unknown unit '%s'\nTry 'unitconv --list' to see supported units", args[1])
	}
	to, ok := units.Lookup(args[2])
	if !ok {
		return fmt.Errorf("unknown unit '%s'\nTry 'unitconv --list' to see supported units", args[2])
	}

	log.LogDebug(fmt.Sprintf("resolved '%s' to %s (%s) and '%s' to %s (%s)",
		args[1], from.Name, from.Category, args[2], to.Name, to.Category))

	result, warnings, err := convert.Convert(value, from, to)
	if err != nil {
		return err
	}

	for _, w := range warnings {
		display.Warning{Title: w.Message}.Display(cmd.ErrOrStderr())
	}

	log.LogDebug(fmt.Sprintf("base value: %v", from.ToBase(value)))

	return display.WriteConversion(cmd.OutOrStdout(), display.Conversion{
		Input:     value,
		FromLabel: args[1],
		Output:    result,
		ToLabel:   args[2],
	}, outputFormat, precision)
}
