package main

import (
	"io"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/conn-castle/valet-php/internal/messages"
	"github.com/conn-castle/valet-php/internal/php"
)

// versionRow is one supported runtime as reported by `vphp versions`.
type versionRow struct {
	Release   php.Release
	Installed bool
	Linked    bool
}

func newVersionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.VersionsUse,
		Short: messages.VersionsShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			installed, err := a.packages.ListInstalled()
			if err != nil {
				return err
			}
			// A missing php link only means nothing is marked as linked.
			linked, _ := a.packages.LinkedVersion()
			formula, _ := a.packages.LinkedFormula()
			renderVersions(a.out, collectVersions(installed, linked, formula))
			return nil
		},
	}
}

// collectVersions marks each supported version. A version linked through the
// unversioned php formula counts as installed.
func collectVersions(installed []string, linked php.Version, linkedFormula string) []versionRow {
	rows := make([]versionRow, 0, len(php.Supported()))
	for _, v := range php.Supported() {
		release, _ := php.Lookup(v)
		rows = append(rows, versionRow{
			Release:   release,
			Installed: slices.Contains(installed, release.Formula) || (v == linked && linkedFormula == php.UnversionedFormula),
			Linked:    v == linked,
		})
	}
	return rows
}

func renderVersions(out io.Writer, rows []versionRow) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint(messages.VersionsHeaderVersion),
		text.FgHiCyan.Sprint(messages.VersionsHeaderFormula),
		text.FgHiCyan.Sprint(messages.VersionsHeaderAPI),
		text.FgHiCyan.Sprint(messages.VersionsHeaderInstalled),
		text.FgHiCyan.Sprint(messages.VersionsHeaderLinked),
	})
	for _, row := range rows {
		installed := text.FgHiBlack.Sprint(messages.VersionsNo)
		if row.Installed {
			installed = text.FgGreen.Sprint(messages.VersionsYes)
		}
		linked := ""
		if row.Linked {
			linked = text.FgGreen.Sprint(messages.VersionsLinkedMarker)
		}
		t.AppendRow(table.Row{
			string(row.Release.Version),
			row.Release.Formula,
			row.Release.APINumber,
			installed,
			linked,
		})
	}
	t.Render()
}
