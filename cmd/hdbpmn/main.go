package main

import (
	"fmt"
	"io"
	"os"

	json "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/vine-io/hdbpmn"
	"github.com/vine-io/hdbpmn/syntax"
	log "github.com/vine-io/vine/lib/logger"
)

type rootFlags struct {
	verbose int
	quiet   bool
	config  string

	computerGenerated bool
	twoWay            bool
	noPools           bool
	noLanes           bool
	noScale           bool
	exclude           []string
	excludeLabels     []string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "hdbpmn",
		Short:         "Convert BPMN XML diagrams and their images into object detection annotations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogger(flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.CountVarP(&flags.verbose, "verbose", "v", "log debug messages, twice for trace messages")
	pf.BoolVarP(&flags.quiet, "quiet", "q", false, "log errors only")
	pf.StringVarP(&flags.config, "config", "c", "", "YAML file with parser options")
	pf.BoolVar(&flags.computerGenerated, "computer-generated", false, "skip labels inside plain activities, as rendered by modelers")
	pf.BoolVar(&flags.twoWay, "two-way-labels", false, "link symbols to their label as well")
	pf.BoolVar(&flags.noPools, "no-pools", false, "do not link shapes to pools")
	pf.BoolVar(&flags.noLanes, "no-lanes", false, "do not link flow nodes to lanes")
	pf.BoolVar(&flags.noScale, "no-scale", false, "keep diagram coordinates instead of scaling to the image width")
	pf.StringSliceVar(&flags.exclude, "exclude", nil, "categories to drop from results")
	pf.StringSliceVar(&flags.excludeLabels, "exclude-labels", nil, "categories whose labels are skipped")

	cmd.AddCommand(
		newParseCommand(flags),
		newBatchCommand(flags),
		newCategoriesCommand(flags),
		newExtentCommand(),
	)
	return cmd
}

func setupLogger(flags *rootFlags) {
	level := log.InfoLevel
	switch {
	case flags.quiet:
		level = log.ErrorLevel
	case flags.verbose == 1:
		level = log.DebugLevel
	case flags.verbose > 1:
		level = log.TraceLevel
	}
	log.DefaultLogger = log.NewLogger(log.WithLevel(level))
}

// parserOptions merges the config file with command line flags, flags last.
func (f *rootFlags) parserOptions(cmd *cobra.Command) ([]hdbpmn.Option, error) {
	opts := make([]hdbpmn.Option, 0)
	if f.config != "" {
		cfg, err := hdbpmn.LoadOptions(f.config)
		if err != nil {
			return nil, err
		}
		opts = append(opts, hdbpmn.WithConfig(cfg))
	}

	if f.computerGenerated {
		opts = append(opts, hdbpmn.WithExcludedLabelCategories(syntax.PlainActivityCategories()...))
	}
	pf := cmd.Flags()
	if pf.Changed("two-way-labels") {
		opts = append(opts, hdbpmn.WithTwoWayLabelLinking(f.twoWay))
	}
	if pf.Changed("no-pools") {
		opts = append(opts, hdbpmn.WithLinkPools(!f.noPools))
	}
	if pf.Changed("no-lanes") {
		opts = append(opts, hdbpmn.WithLinkLanes(!f.noLanes))
	}
	if pf.Changed("no-scale") {
		opts = append(opts, hdbpmn.WithScaleToAnnotationWidth(!f.noScale))
	}
	if len(f.exclude) != 0 {
		opts = append(opts, hdbpmn.WithExcludedCategories(f.exclude...))
	}
	if len(f.excludeLabels) != 0 {
		opts = append(opts, hdbpmn.WithExcludedLabelCategories(f.excludeLabels...))
	}

	return opts, nil
}

func (f *rootFlags) newParser(cmd *cobra.Command) (*hdbpmn.Parser, error) {
	opts, err := f.parserOptions(cmd)
	if err != nil {
		return nil, err
	}
	return hdbpmn.NewParser(opts...)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
