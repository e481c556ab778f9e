// Package main provides the CLI entry point for excel2vcf.
package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/contacts"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/output"
)

var (
	outputPath string
	sheetName  string
	sheetIndex int
	phoneCol   int
	nameCol    int
	hasHeader  string
	dialCode   string
	verbose    bool
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "excel2vcf [input.xlsx]",
		Short: "Convert spreadsheet contact lists into vCard files",
		Long: `excel2vcf reads names and phone numbers from an Excel or CSV sheet
and writes them as vCard 3.0 contacts (.vcf).

The header row and the phone/name columns are detected automatically
unless given explicitly.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
		RunE: runConvert,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	flags := rootCmd.Flags()
	flags.StringVarP(&outputPath, "out", "o", "contacts.vcf", "Output file path (- for stdout)")
	flags.StringVar(&sheetName, "sheet-name", "", "Sheet to read, by name (takes priority over --sheet-index)")
	flags.IntVar(&sheetIndex, "sheet-index", 0, "Sheet to read, by 0-based position")
	flags.IntVar(&phoneCol, "phone-col", 0, "0-based phone column (default: detect, else 1)")
	flags.IntVar(&nameCol, "name-col", 0, "0-based name column (default: detect, else 2)")
	flags.StringVar(&hasHeader, "has-header", "", "Force header handling of the first row: true or false (default: detect)")
	flags.StringVar(&dialCode, "dial-code", "", "Country prefix for numbers without +, e.g. +34")

	rootCmd.AddCommand(newServeCmd(), newInspectCmd())
	return rootCmd
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return report(err)
	}

	res, err := excel2vcf.Convert(args[0], opts)
	if err != nil {
		return report(err)
	}

	if outputPath == "-" {
		if err := output.WriteVCards(cmd.OutOrStdout(), res.Cards); err != nil {
			return report(fmt.Errorf("failed to write output: %w", err))
		}
		return nil
	}
	if err := output.WriteVCardFile(outputPath, res.Cards); err != nil {
		return report(fmt.Errorf("failed to write output: %w", err))
	}

	log.Info().Str("out", outputPath).Int("contacts", res.Count).Msg("vcf generated")
	fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d contacts.\n", outputPath, res.Count)
	return nil
}

// buildOptions turns the command-line flags into conversion options.
// Index flags only count when given explicitly.
func buildOptions(cmd *cobra.Command) (excel2vcf.Options, error) {
	header, err := excel2vcf.ParseTristate("has-header", hasHeader)
	if err != nil {
		return excel2vcf.Options{}, err
	}

	opts := excel2vcf.Options{
		SheetName: sheetName,
		Contacts: contacts.Config{
			HasHeader: header,
			DialCode:  dialCode,
		},
	}
	flags := cmd.Flags()
	if flags.Changed("sheet-index") {
		opts.SheetIndex = excel2vcf.Int(sheetIndex)
	}
	if flags.Changed("phone-col") {
		opts.Contacts.PhoneColumn = excel2vcf.Int(phoneCol)
	}
	if flags.Changed("name-col") {
		opts.Contacts.NameColumn = excel2vcf.Int(nameCol)
	}
	return opts, opts.Validate()
}

// report logs err with a message specific to its kind and returns it.
func report(err error) error {
	var cfgErr *excel2vcf.ConfigError
	switch {
	case errors.Is(err, excel2vcf.ErrFileNotFound):
		log.Error().Err(err).Msg("input file not found")
	case errors.Is(err, excel2vcf.ErrEmptyGrid):
		log.Error().Err(err).Msg("the sheet is empty")
	case errors.Is(err, excel2vcf.ErrNoRecords):
		log.Error().Err(err).Msg("no contacts generated, check the phone and name columns")
	case errors.As(err, &cfgErr):
		log.Error().Err(err).Msg("invalid configuration")
	default:
		log.Error().Err(err).Msg("conversion failed")
	}
	return err
}
