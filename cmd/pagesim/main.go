package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bietkhonhungvandi212/pagesim/internal/config"
	"github.com/bietkhonhungvandi212/pagesim/internal/input"
	"github.com/bietkhonhungvandi212/pagesim/internal/logging"
	"github.com/bietkhonhungvandi212/pagesim/internal/report"
	util "github.com/bietkhonhungvandi212/pagesim/internal/utils"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pagesim",
		Short: "Page replacement simulator (FIFO vs LRU)",
		Long: `pagesim replays a reference string against FIFO and LRU frame sets.

It prints the frame contents after every request, the fault totals of both
policies, and can sweep a range of frame counts to compare them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default $PAGESIM_CONFIG)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newBenchCmd(),
		newDemoCmd(),
		newConfigCmd(),
	)
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return report.WriteJSON(cmd.OutOrStdout(), map[string]string{"version": version})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pagesim version %s\n", version)
			return nil
		},
	}
}

// session is the resolved configuration, logger and output settings of one invocation.
type session struct {
	cfg     *config.Config
	log     *zap.Logger
	out     io.Writer
	jsonOut bool
	opts    report.Options
}

func newSession(cmd *cobra.Command) (*session, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("json") {
		cfg.Output.JSON, _ = cmd.Flags().GetBool("json")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Output.Color = false
	}

	logger, err := logging.New(cfg.Logging.Level, cmd.ErrOrStderr())
	if err != nil {
		return nil, err
	}
	logger = logger.With(zap.String("run_id", uuid.NewString()), zap.String("command", cmd.Name()))

	return &session{
		cfg:     cfg,
		log:     logger,
		out:     cmd.OutOrStdout(),
		jsonOut: cfg.Output.JSON,
		opts:    report.Options{Color: cfg.Output.Color && !color.NoColor},
	}, nil
}

func (s *session) close() {
	_ = s.log.Sync()
}

// positiveFlag reads an integer flag given as text, falling back to def when unset.
// Count flags are declared as strings so that a non-numeric value fails with errInvalid
// like a zero or negative one does, instead of with pflag's own parse error.
func positiveFlag(cmd *cobra.Command, name string, def int, errInvalid error) (int, error) {
	if !cmd.Flags().Changed(name) {
		return def, input.CheckPositive(def, errInvalid)
	}
	raw, _ := cmd.Flags().GetString(name)
	return input.ParsePositive(raw, errInvalid)
}

// referencePages reads the reference string from --file ("-" for stdin) or the arguments.
func referencePages(cmd *cobra.Command, args []string) ([]util.PageRef, error) {
	file, _ := cmd.Flags().GetString("file")

	var pages []util.PageRef
	switch {
	case file == "-":
		p, err := input.ReadPages(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		pages = p
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open reference file: %w", err)
		}
		defer f.Close()
		p, err := input.ReadPages(f)
		if err != nil {
			return nil, err
		}
		pages = p
	default:
		pages = input.ParsePages(strings.Join(args, " "))
	}

	if err := input.ValidatePages(pages); err != nil {
		return nil, err
	}
	return pages, nil
}
