package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rhyrak/schedule-extractor/internal/config"
	"github.com/rhyrak/schedule-extractor/internal/formatter"
	"github.com/rhyrak/schedule-extractor/internal/logging"
	"github.com/rhyrak/schedule-extractor/pkg/model"
)

const bannerTitle = "Schedule Data Formatter"

// app carries state shared by the subcommands.
type app struct {
	configPath string
	cfg        *config.Configuration
	logger     zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "extractor",
		Short: "Format schedule entries as seed file lines",
		Long: "Renders schedule entries transcribed from schedule images as TypeScript object literals,\n" +
			"ready to be pasted into the seed file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printBanner(cmd.OutOrStdout())
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default ./extractor.yaml)")

	root.AddCommand(newFormatCmd(a))
	root.AddCommand(newConvertCmd(a))
	return root
}

// load reads configuration and sets up logging (called by commands that need it).
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	a.cfg = cfg
	a.logger = logging.Setup(cfg.Environment, cmd.ErrOrStderr())
	return nil
}

// formatter builds a formatter from config, letting an explicit --escape win.
func (a *app) formatter(cmd *cobra.Command, escape bool) formatter.Formatter {
	f := formatter.Formatter{Indent: &a.cfg.Indent, Escape: a.cfg.Escape}
	if cmd.Flags().Changed("escape") {
		f.Escape = escape
	}
	return f
}

func printBanner(w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n\nUse this script to format schedule entries.\nExample:\n%s\n",
		bannerTitle, strings.Repeat("=", 50), formatter.Format(model.ExampleEntry()))
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
