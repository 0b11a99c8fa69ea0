package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkrause/famrecon/internal/analyze"
	"github.com/dkrause/famrecon/internal/exitcode"
	"github.com/dkrause/famrecon/internal/logging"
	"github.com/dkrause/famrecon/internal/normalize"
	"github.com/dkrause/famrecon/internal/workbook"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and stats (no writes)",
	RunE:  runPlan,
}

func init() {
	planCmd.Flags().StringVar(&cfg.InputPath, "in", "", "Path to the input workbook (required)")
	_ = planCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	rawFAM, rawTM, err := workbook.ReadInput(cfg.InputPath, cfg.FAMSheet, cfg.TMSheet)
	if err != nil {
		log.Error().Err(err).Msg("workbook validation failed")
		os.Exit(exitcode.ValidationError)
	}

	fmt.Println("=== famrecon plan ===")
	fmt.Printf("File:        %s\n", cfg.InputPath)
	fmt.Printf("SHA-256:     %s\n", sha)
	fmt.Printf("Size:        %d bytes\n", stat.Size())
	fmt.Printf("FAM sheet:   %q, %d rows, %d columns\n", cfg.FAMSheet, rawFAM.Len(), len(rawFAM.Columns))
	fmt.Printf("TM sheet:    %q, %d rows, %d columns\n", cfg.TMSheet, rawTM.Len(), len(rawTM.Columns))
	fmt.Printf("Date format: %s\n", analyze.DetectDateFormat(rawFAM, "vo-datum"))
	fmt.Println("Sheet validation: OK")

	return nil
}
