package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf"
	"github.com/ukaji3/excel2vcf-go/pkg/excel2vcf/output"
)

func newInspectCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Show how each sheet would be converted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := excel2vcf.Inspect(args[0])
			if err != nil {
				return report(err)
			}

			jsonData, err := output.ToJSON(wb, pretty)
			if err != nil {
				return report(fmt.Errorf("serialization failed: %w", err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return nil
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
