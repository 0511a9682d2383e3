package main

import (
	"github.com/spf13/cobra"
	"github.com/vine-io/hdbpmn/syntax"
)

func newCategoriesCommand(flags *rootFlags) *cobra.Command {
	var (
		noPosition bool
		taskTypes  bool
	)

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "Print the category table in COCO format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			excluded := map[string]struct{}{}
			for _, c := range flags.exclude {
				excluded[c] = struct{}{}
			}

			translate := map[string]string{}
			if noPosition {
				for k, v := range syntax.NoPositionCategory {
					translate[k] = v
				}
			}
			if taskTypes || flags.computerGenerated {
				for k, v := range syntax.TaskTypesToTask() {
					translate[k] = v
				}
			}

			return writeJSON(cmd.OutOrStdout(), syntax.CocoCategories(excluded, translate))
		},
	}

	cmd.Flags().BoolVar(&noPosition, "no-position", false, "merge start, intermediate and end events of the same type")
	cmd.Flags().BoolVar(&taskTypes, "task-types", false, "merge typed tasks into task")
	return cmd
}
