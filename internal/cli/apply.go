package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/scoutsearch/roleattrs/api/v1beta1/configs"
	"github.com/scoutsearch/roleattrs/pkg/infer"
)

const (
	applyExamples = `  # Infer attributes for the database named in the config (default roles_db.json):
  roleattrs

  # Use a specific database file:
  roleattrs ./data/roles_db.json

  # Preview the changes without writing them:
  roleattrs --dry-run --diff

  # Write the default configuration file and exit:
  roleattrs --write-config`

	highlightFormatter = "terminal256"
	highlightStyle     = "monokai"
)

type ApplyArgs struct {
	*RootArgs

	Database    string
	DryRun      bool
	Diff        bool
	WriteConfig bool
	ShowConfig  bool
}

func NewApplyArgs(rootArgs *RootArgs) *ApplyArgs {
	return &ApplyArgs{
		RootArgs: rootArgs,
	}
}

func (aa *ApplyArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&aa.DryRun, "dry-run", false, "Run inference without writing the database")
	cmd.Flags().BoolVar(&aa.Diff, "diff", false, "Print a unified diff of the database changes")
	cmd.Flags().BoolVar(&aa.WriteConfig, "write-config", false, "Write the default configuration file and exit")
	cmd.Flags().BoolVar(&aa.ShowConfig, "show-config", false, "Print the active configuration and exit")
}

func NewApplyCmd(aa *ApplyArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "apply [database]",
		Short:   "Default command, infer attributes for every role in the database",
		Example: applyExamples,
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
			if len(args) == 0 {
				return []cobra.Completion{"json"}, cobra.ShellCompDirectiveFilterFileExt
			}

			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				aa.Database = args[0]
			}

			return apply(cmd, aa)
		},
		SilenceUsage: true,
	}
	aa.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func apply(cmd *cobra.Command, aa *ApplyArgs) error {
	if aa.WriteConfig {
		path, _ := aa.configPath()

		err := configs.WriteDefault(path, false)
		if err != nil {
			return fmt.Errorf("%w: %w", errConfig, err)
		}

		return nil
	}

	cfg, configPath, err := aa.loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	if aa.ShowConfig {
		slog.Info("active configuration", slog.String("path", configPath))

		b, err := cfg.MarshalYAML()
		if err != nil {
			return fmt.Errorf("marshal config yaml: %w", err)
		}

		return writeHighlighted(cmd.OutOrStdout(), string(b), "yaml")
	}

	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	database := aa.Database
	if database == "" {
		database = cfg.Database
	}

	report, err := infer.Run(cmd.Context(), database, table,
		infer.WithDryRun(aa.DryRun),
		infer.WithDiff(aa.Diff),
	)
	if err != nil {
		return fmt.Errorf("infer attributes: %w", err)
	}

	out := cmd.OutOrStdout()

	if report.Diff != "" {
		err = writeHighlighted(out, report.Diff, "diff")
		if err != nil {
			return err
		}
	}

	mustN(fmt.Fprintf(out, "Successfully processed %s roles.\n", humanize.Comma(int64(report.Processed))))
	mustN(fmt.Fprintf(out, "Updated %s roles with inferred attributes.\n", humanize.Comma(int64(report.Updated))))

	if aa.DryRun && report.Changed > 0 {
		mustN(fmt.Fprintf(out, "Dry run, %s roles would change.\n", humanize.Comma(int64(report.Changed))))
	}

	return nil
}

// writeHighlighted writes source to w, syntax highlighted with the given
// chroma lexer when w is a terminal.
func writeHighlighted(w io.Writer, source, lexer string) error {
	if isTerminal(w) {
		err := quick.Highlight(w, source, lexer, highlightFormatter, highlightStyle)
		if err == nil {
			return nil
		}

		slog.Debug("highlight output", slog.Any("error", err))
	}

	_, err := io.WriteString(w, source)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}
