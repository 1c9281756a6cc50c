package cmd

import (
	"encoding/json"
	"fmt"

	"huectl/internal/scheme"
	"huectl/internal/state"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type schemeEntry struct {
	ID      string `json:"id"`
	System  string `json:"system"`
	Slug    string `json:"slug"`
	Current bool   `json:"current"`
}

func newListCmd() *cobra.Command {
	var (
		asJSON bool
		system string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed schemes",
		Long: `Lists the schemes found in the schemes repository and in the custom-schemes
directory. Custom schemes with the same name as a builtin one are listed once.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := loadEnvironment()
			if err != nil {
				return err
			}
			var filter scheme.System
			if system != "" {
				filter, err = scheme.ParseSystem(system)
				if err != nil {
					return err
				}
			}

			ids, err := env.newEngine(cmd.OutOrStdout(), true).Schemes()
			if err != nil {
				return err
			}
			current, err := state.Read(env.DataDir)
			if err != nil {
				return err
			}

			entries := make([]schemeEntry, 0, len(ids))
			for _, id := range ids {
				if filter != "" && id.System != filter {
					continue
				}
				entries = append(entries, schemeEntry{
					ID:      id.String(),
					System:  string(id.System),
					Slug:    id.Slug,
					Current: id.String() == current,
				})
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			}
			printSchemeTable(cmd, entries)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().StringVarP(&system, "system", "s", "", "Only list schemes of this system (base16, base24)")
	return cmd
}

func printSchemeTable(cmd *cobra.Command, entries []schemeEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("ID"),
		text.FgHiCyan.Sprint("SYSTEM"),
		text.FgHiCyan.Sprint("SLUG"),
		text.FgHiCyan.Sprint("CURRENT"),
	})
	for _, e := range entries {
		marker := ""
		if e.Current {
			marker = text.FgGreen.Sprint("*")
		}
		t.AppendRow(table.Row{e.ID, e.System, e.Slug, marker})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d schemes", len(entries))})
	t.Render()
}
