package main

import (
	"fmt"
	"strings"

	"github.com/loamwood/vimengine/internal/excmd"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <ex-command>",
	Short: "Parse an ex-command line and print its AST",
	Long:  `Parses a line of Vim ":"-command text (without the leading colon) through the excmd parser and prints the resulting LineCommand, or the ParseError if it failed.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	line := strings.TrimPrefix(strings.Join(args, " "), ":")

	parsed, err := excmd.Parse(line, excmd.Options{})
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "parse error at %d (%s)\n", err.Pos, err.Kind)
		fmt.Fprintln(cmd.OutOrStdout(), err.Error())
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "command:  %s\n", parsed.Kind)
	fmt.Fprintf(cmd.OutOrStdout(), "bang:     %v\n", parsed.Bang)
	fmt.Fprintf(cmd.OutOrStdout(), "range:    %+v\n", parsed.Range)
	if parsed.Count != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "count:    %d\n", *parsed.Count)
	}
	if parsed.Register != 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "register: %q\n", parsed.Register)
	}
	if len(parsed.Args) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "args:     %v\n", parsed.Args)
	}
	if parsed.RawArgs != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "raw:      %q\n", parsed.RawArgs)
	}
	if parsed.Substitute != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "substitute: %+v\n", *parsed.Substitute)
	}
	if parsed.Map != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "map:      %+v\n", *parsed.Map)
	}
	if parsed.Set != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "set:      %+v\n", *parsed.Set)
	}
	return nil
}
