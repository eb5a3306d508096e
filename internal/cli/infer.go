package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/scoutsearch/roleattrs/pkg/rule"
)

const inferExamples = `  # Show which attributes a role would be assigned:
  roleattrs infer "Software Engineer" "Acme Corp"

  # Print the result as JSON:
  roleattrs infer "Payroll Officer" --output json`

var outputFormats = []string{"text", "json"}

type InferArgs struct {
	*RootArgs

	Output string
}

func NewInferArgs(rootArgs *RootArgs) *InferArgs {
	return &InferArgs{
		RootArgs: rootArgs,
	}
}

func (ia *InferArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ia.Output, "output", "o", "text",
		fmt.Sprintf("Output format, one of: %s", outputFormats))

	must(cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(outputFormats, cobra.ShellCompDirectiveNoFileComp),
	))
}

func NewInferCmd(ia *InferArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "infer TITLE [ORGANIZATION]",
		Short:   "Show the attributes inferred for a single role",
		Example: inferExamples,
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var organization string
			if len(args) > 1 {
				organization = args[1]
			}

			return inferRole(cmd, ia, args[0], organization)
		},
		SilenceUsage: true,
	}
	ia.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

// inferResult is the JSON form of a single inference.
type inferResult struct {
	Title        string `json:"title"`
	Organization string `json:"organization,omitempty"`

	rule.Result

	Matched bool `json:"matched"`
}

func inferRole(cmd *cobra.Command, ia *InferArgs, title, organization string) error {
	switch ia.Output {
	case "text", "json":
	default:
		return fmt.Errorf("invalid argument %q for \"--output\" flag: expected one of: %s",
			ia.Output, strings.Join(outputFormats, ", "))
	}

	cfg, _, err := ia.loadConfig(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	table, err := cfg.Table()
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	res := inferResult{
		Title:        title,
		Organization: organization,
		Result:       table.Infer(title, organization),
	}
	res.Matched = res.Result.Matched()

	if ia.Output == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")

		err := enc.Encode(res)
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}

		return nil
	}

	writeInferText(cmd.OutOrStdout(), res)

	return nil
}

func writeInferText(w io.Writer, res inferResult) {
	label := lipgloss.NewStyle().Bold(true)
	faint := lipgloss.NewStyle().Faint(true)

	if !res.Matched {
		mustN(fmt.Fprintln(w, faint.Render("No rule matched.")))

		return
	}

	mustN(fmt.Fprintf(w, "%s %s\n", label.Render("Category:"), res.Category))

	keyword := res.Keyword
	if keyword == "" {
		keyword = faint.Render("(match expression)")
	}

	mustN(fmt.Fprintf(w, "%s %s\n", label.Render("Keyword:"), keyword))
	mustN(fmt.Fprintln(w, label.Render("Attributes:")))

	for _, a := range res.Attributes {
		mustN(fmt.Fprintf(w, "  - %s\n", a))
	}
}
