package cli

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/exp/charmtone"
)

// ColorScheme is the [fang.ColorSchemeFunc] used for help and error output.
func ColorScheme(c lipgloss.LightDarkFunc) fang.ColorScheme {
	text := c(charmtone.Charcoal, charmtone.Smoke)
	subtle := c(charmtone.Squid, charmtone.Oyster)
	accent := c(charmtone.Guac, charmtone.Julep)

	return fang.ColorScheme{
		Base:           text,
		Title:          charmtone.Malibu,
		Codeblock:      c(charmtone.Salt, lipgloss.Color("#2F2E36")),
		Program:        accent,
		Command:        accent,
		DimmedArgument: subtle,
		Comment:        subtle,
		Flag:           accent,
		Argument:       text,
		Description:    text,
		FlagDefault:    subtle,
		QuotedString:   c(charmtone.Coral, charmtone.Salmon),
		ErrorHeader: [2]color.Color{
			charmtone.Butter,
			charmtone.Cherry,
		},
	}
}
