package main

import (
	"os"
	"path/filepath"

	"github.com/loamwood/vimengine/internal/vimconfig"
	"github.com/loamwood/vimengine/internal/vimlog"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:     "vimengine",
	Short:   "A standalone harness for the vimengine mode-dispatch and ex-command packages",
	Long:    "vimengine demonstrates the vim-emulation core (key remapping, mode dispatch, and ex-command parsing) outside of any host editor.",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_, err := initDebugLogging()
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.vimengine/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"enable debug logging to ./vimengine-debug.log")

	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(replCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig resolves cfgFile (or its default location), writing a
// default config the first time nothing exists yet, exactly as perles'
// cmd/root.go does for its own config.
func loadConfig() (vimconfig.FileConfig, error) {
	path := cfgFile
	if path == "" {
		path = filepath.Join(".vimengine", "config.yaml")
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr == nil {
			_ = vimconfig.WriteDefaultConfig(path)
		}
	}
	return vimconfig.Load(path)
}

func initDebugLogging() (func(), error) {
	if !debugFlag {
		return func() {}, nil
	}
	return vimlog.Init("vimengine-debug.log")
}
