package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"

	"github.com/scoutsearch/roleattrs/pkg/roles"
)

// ErrorHandler renders errors returned by the root command. It is used with
// [fang.WithErrorHandler].
func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	mustN(fmt.Fprintln(w, styles.ErrorHeader.String()))
	mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(err.Error())))
	mustN(fmt.Fprintln(w))

	var hint []string

	switch {
	case isUsageError(err):
		hint = []string{"Try", styles.Program.Flag.Render("--help"), "for usage."}
	case errors.Is(err, roles.ErrNotFound):
		hint = []string{"Pass the database path as an argument, or set", styles.Program.Flag.Render("database"), "in the config."}
	default:
		return
	}

	mustN(fmt.Fprintln(w, lipgloss.JoinHorizontal(
		lipgloss.Left,
		styles.ErrorText.UnsetWidth().Render(hint[0]),
		hint[1],
		styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render(hint[2]),
	)))
	mustN(fmt.Fprintln(w))
}

// Cobra does not export its usage errors, so they are detected by message.
func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"unknown command",
		"invalid argument",
		"accepts at most",
		"accepts between",
		"requires at least",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
