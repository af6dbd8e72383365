package main

import (
	"fmt"
	"io"

	"github.com/loamwood/vimengine/internal/demomodes"
	"github.com/loamwood/vimengine/internal/vimconfig"
	"github.com/loamwood/vimengine/internal/vimcore"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys <notation>",
	Short: "Feed a key-notation sequence through the engine and print the resulting events",
	Long:  `Parses a Vim-style key notation string (e.g. "ihello<Esc>") and runs it through an InputEngine wired to the demo Normal/Insert/Visual/Command modes, printing one line per event (key-end events print nothing).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runKeys,
}

var keysSeed []string

func init() {
	keysCmd.Flags().StringArrayVar(&keysSeed, "line", []string{""}, "seed buffer line (repeatable)")
}

func runKeys(cmd *cobra.Command, args []string) error {
	set, err := vimconfig.ParseKeyNotation(args[0])
	if err != nil {
		return fmt.Errorf("parsing key notation: %w", err)
	}

	sink := &traceSink{out: cmd.OutOrStdout()}
	h, err := demomodes.New(keysSeed, vimcore.Config{Sink: sink})
	if err != nil {
		return fmt.Errorf("building harness: %w", err)
	}

	for _, k := range set.Keys() {
		h.Engine.Process(k)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "--- buffer ---")
	for _, line := range h.Buffer.Lines() {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
	return nil
}

// traceSink is a vimcore.EventSink that prints a human-readable line per
// event, the way `keys` uses to show exactly what the engine did.
type traceSink struct {
	out io.Writer
}

func (s *traceSink) print(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

func (s *traceSink) SwitchedMode(prev, cur vimcore.ModeKind) {
	s.print("mode: %s -> %s", prev, cur)
}
func (s *traceSink) KeyInputStart(k vimcore.KeyInput) { s.print("key start: %s", k) }
func (s *traceSink) KeyInputBuffered(k vimcore.KeyInput) {
	s.print("key buffered: %s", k)
}
func (s *traceSink) KeyInputProcessed(k vimcore.KeyInput, result vimcore.ProcessResult) {
	s.print("key processed: %s -> %v", k, result.Kind)
}
func (s *traceSink) KeyInputEnd(vimcore.KeyInput)    {}
func (s *traceSink) ErrorMessage(msg string)         { s.print("error: %s", msg) }
func (s *traceSink) WarningMessage(msg string)       { s.print("warning: %s", msg) }
func (s *traceSink) StatusMessage(msg string)        { s.print("status: %s", msg) }
func (s *traceSink) StatusMessageLong(lines []string) {
	for _, line := range lines {
		s.print("status: %s", line)
	}
}
func (s *traceSink) Closed() { s.print("closed") }

var _ vimcore.EventSink = (*traceSink)(nil)
