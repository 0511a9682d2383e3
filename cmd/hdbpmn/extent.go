package main

import (
	"github.com/spf13/cobra"
	"github.com/vine-io/hdbpmn/api"
	"github.com/vine-io/hdbpmn/bpmn"
)

type extent struct {
	File     string           `json:"file"`
	DIPrefix string           `json:"diPrefix,omitempty"`
	Box      *api.BoundingBox `json:"bbox,omitempty"`
}

func newExtentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "extent BPMN...",
		Short: "Print the bounding box covering all diagram elements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := make([]extent, 0, len(args))
			for _, path := range args {
				doc, err := bpmn.ReadFile(path)
				if err != nil {
					return err
				}
				d, err := doc.Diagram()
				if err != nil {
					return err
				}

				e := extent{File: path}
				e.DIPrefix, _ = bpmn.DIPrefix(doc.Root())
				if box, ok := bpmn.DiagramExtent(d); ok {
					e.Box = &box
				}
				out = append(out, e)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}
