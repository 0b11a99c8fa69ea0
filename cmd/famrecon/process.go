package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkrause/famrecon/internal/exitcode"
	"github.com/dkrause/famrecon/internal/logging"
	"github.com/dkrause/famrecon/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Reconcile a billing workbook and write the result workbook",
	RunE:  runProcess,
}

func init() {
	f := processCmd.Flags()
	f.StringVar(&cfg.InputPath, "in", "", "Path to the input workbook (required)")
	f.StringVar(&cfg.OutputPath, "out", "", "Path for the result workbook (required)")
	f.StringVar(&cfg.KVLookupPath, "kv-lookup", "", "Path to the PLZ→KV reference workbook")
	_ = processCmd.MarkFlagRequired("in")
	_ = processCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if err := loadConfig(); err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateForProcess(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := pipeline.Run(log, &cfg)
	if err != nil {
		var pe *pipeline.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("reconciliation failed")
			switch pe.Phase {
			case "load":
				os.Exit(exitcode.ReadError)
			case "export":
				os.Exit(exitcode.WriteError)
			default:
				os.Exit(exitcode.ProcessError)
			}
		}
		log.Error().Err(err).Msg("reconciliation failed")
		os.Exit(exitcode.ProcessError)
	}

	fmt.Printf("Reconciliation complete: FAM %d/%d active, TM %d/%d active, avk=%s (%.1fs)\n",
		summary.FAMRowsActive, summary.FAMRowsRead,
		summary.TMRowsActive, summary.TMRowsRead,
		summary.PriceType, summary.DurationTotal.Seconds())
	return nil
}
