package main

import (
	"github.com/spf13/cobra"
)

func newParseCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse BPMN [IMAGE]",
		Short: "Print the annotations of one diagram as JSON",
		Long: "Print the annotations of one diagram as JSON. Without an image the\n" +
			"annotations stay in diagram coordinates.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.newParser(cmd)
			if err != nil {
				return err
			}

			if len(args) == 1 {
				anns, err := p.ParseAnnotations(args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), anns)
			}

			img, err := p.Parse(args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), img)
		},
	}
}
