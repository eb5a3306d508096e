package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/scoutsearch/roleattrs/api/v1beta1/configs"
	"github.com/scoutsearch/roleattrs/pkg/config"
	"github.com/scoutsearch/roleattrs/pkg/log"
	"github.com/scoutsearch/roleattrs/pkg/version"
)

const (
	cmdName = "roleattrs"
	cmdDesc = `Infer skill attributes for job roles from their titles and organizations.`
)

type RootArgs struct {
	LogLevel   string
	LogFormat  string
	ConfigPath string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.ConfigPath, "config", "", "Path to the roleattrs configuration file")

	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.MarkPersistentFlagFilename("config", "yaml", "yml"))
}

// configPath returns the configuration file to read, and whether it was
// requested explicitly.
func (ra *RootArgs) configPath() (string, bool) {
	if ra.ConfigPath != "" {
		return ra.ConfigPath, true
	}

	return configs.GetPath(), false
}

// loadConfig reads the configuration. A missing configuration file is only
// an error when its path was given explicitly.
func (ra *RootArgs) loadConfig(stderr io.Writer) (*configs.Config, string, error) {
	path, explicit := ra.configPath()

	cfg, err := config.Load(path, explicit, config.WithColor(isTerminal(stderr)))
	if err != nil {
		return nil, path, err //nolint:wrapcheck // Already annotated with the path.
	}

	return cfg, path, nil
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()
	applyArgs := NewApplyArgs(args)

	applyCmd := NewApplyCmd(applyArgs)
	cmd := &cobra.Command{
		Use:               cmdName + " [database]",
		Short:             cmdDesc,
		Example:           applyExamples,
		PersistentPreRunE: setupLogging(args),
		ValidArgsFunction: applyCmd.ValidArgsFunction,
		Args:              applyCmd.Args,
		RunE:              applyCmd.RunE,
		SilenceUsage:      true,
	}

	args.AddFlags(cmd)
	applyArgs.AddFlags(cmd)
	cmd.AddCommand(applyCmd, NewInferCmd(NewInferArgs(args)))

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		slog.SetDefault(slog.New(logHandler))
		slog.Debug("starting", slog.Any("build", version.LogValue()))

		return nil
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: file descriptors fit in int.
}
