package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/specialistvlad/graphflow/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) error {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// options collects every flag before it is validated into an app.Config.
type options struct {
	logLevel     string
	logFormat    string
	catalogPaths []string
	configPath   string

	workers         int
	healthcheckPort int
	journalURL      string
	socketIOURL     string
	timeout         time.Duration
}

// config validates the flags shared by every command.
func (o *options) config(graphPaths []string) (*app.Config, error) {
	logFormat := strings.ToLower(o.logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(o.logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	cfg, err := app.NewConfig(app.Config{
		GraphPaths:       graphPaths,
		CatalogPaths:     o.catalogPaths,
		EngineConfigPath: o.configPath,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
		HealthcheckPort:  o.healthcheckPort,
		WorkerCount:      o.workers,
		JournalURL:       o.journalURL,
		SocketIOURL:      o.socketIOURL,
		Timeout:          o.timeout,
	})
	if err != nil {
		return nil, usageError("%s", err.Error())
	}
	return cfg, nil
}

// NewRootCommand builds the graphflow command tree. Output, logs and help
// all go to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "graphflow",
		Short: "graphflow executes graph based programs",
		Long: `graphflow builds programs by placing node templates and wiring their
properties, then runs them on a concurrent worker pool until no work is left.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(out)

	flags := root.PersistentFlags()
	flags.StringVar(&opts.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringSliceVar(&opts.catalogPaths, "catalog", nil, "HCL node catalog files or directories, added to the built-in templates.")
	flags.StringVar(&opts.configPath, "config", "", "Engine config file merged over config.yaml (default: $APP_CONFIG_PATH).")

	root.AddCommand(
		newRunCommand(out, opts),
		newValidateCommand(out, opts),
		newCatalogCommand(out, opts),
	)
	return root
}

func newRunCommand(out io.Writer, opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run GRAPH_PATH...",
		Short: "Execute a graph until it goes quiet",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(args)
			if err != nil {
				return err
			}
			a, err := newApp(out, cfg)
			if err != nil {
				return err
			}
			res, err := a.Run(cmd.Context())
			if err != nil {
				return &ExitError{Code: 1, Message: err.Error()}
			}
			if res.Stats.Failed > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("run %s: %d instruction(s) failed", res.RunID, res.Stats.Failed)}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&opts.workers, "workers", 0, "Number of concurrent workers. 0 uses worker.pool_size from the config.")
	flags.IntVar(&opts.healthcheckPort, "healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	flags.StringVar(&opts.journalURL, "journal", "memory", "Where executed instructions are recorded: 'memory' or a redis:// URL.")
	flags.StringVar(&opts.socketIOURL, "socketio-url", "", "socket.io server that receives every fired event.")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Maximum run duration. 0 waits until the graph goes quiet.")
	return cmd
}

func newValidateCommand(out io.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate GRAPH_PATH...",
		Short: "Check a graph against the known templates without running it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(args)
			if err != nil {
				return err
			}
			a, err := newApp(out, cfg)
			if err != nil {
				return err
			}
			g, err := a.Validate(cmd.Context())
			if err != nil {
				return &ExitError{Code: 1, Message: fmt.Sprintf("Validation failed: %v", err)}
			}
			fmt.Fprintf(out, "Graph is valid! ✅ (%d nodes, %d edges)\n", g.NodeCount(), g.EdgeCount())
			return nil
		},
	}
}

func newCatalogCommand(out io.Writer, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List every template with its properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(nil)
			if err != nil {
				return err
			}
			a, err := newApp(out, cfg)
			if err != nil {
				return err
			}
			return a.Catalog(out)
		},
	}
}

// newApp turns startup panics into an ExitError.
func newApp(out io.Writer, cfg *app.Config) (a *app.App, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ExitError{Code: 1, Message: fmt.Sprintf("application startup panicked: %v", r)}
		}
	}()
	return app.NewApp(out, cfg), nil
}

// Execute runs the command line args against a fresh command tree. Errors
// that are not already an ExitError are usage errors.
func Execute(ctx context.Context, out io.Writer, args []string) error {
	root := NewRootCommand(out)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	return usageError("%s", err.Error())
}
