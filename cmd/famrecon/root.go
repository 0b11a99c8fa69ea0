package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dkrause/famrecon/internal/config"
	"github.com/dkrause/famrecon/internal/exitcode"
)

var cfg config.Config
var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "famrecon",
	Short: "FAM/TM billing extract reconciliation",
	Long:  "Reads FAM and TM sheets from a billing workbook, normalizes and audits them, and writes a reconciled result workbook with rejection reports.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "Path to an optional YAML config file")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

// loadConfig applies defaults and merges the optional YAML file.
func loadConfig() error {
	cfg.ApplyDefaults()
	if cfgFile == "" {
		return nil
	}
	return cfg.LoadFromFile(cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
