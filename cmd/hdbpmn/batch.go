package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vine-io/hdbpmn"
	"github.com/vine-io/hdbpmn/api"
)

func newBatchCommand(flags *rootFlags) *cobra.Command {
	var (
		images  string
		workers int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "batch DIR",
		Short: "Parse every .bpmn file under DIR with its image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := flags.newParser(cmd)
			if err != nil {
				return err
			}

			pairs, err := hdbpmn.FindPairs(args[0], images)
			if err != nil {
				return err
			}

			report, err := p.Batch(context.Background(), pairs, workers)
			if err != nil {
				return err
			}

			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if err = writeJSON(f, report); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d documents, %d succeeded, %d failed\n", report.Total, report.Succeeded, report.Failed)
			types := make([]api.ErrorType, 0, len(report.ErrorsByType))
			for typ := range report.ErrorsByType {
				types = append(types, typ)
			}
			sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
			for _, typ := range types {
				fmt.Fprintf(out, "  %-32s %d\n", typ, report.ErrorsByType[typ])
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&images, "images", "", "directory holding the images, defaults to the directory of each .bpmn file")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of documents parsed in parallel")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the full report as JSON to this file")
	return cmd
}
