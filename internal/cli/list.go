package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/335g/clidoc/pkg/catalog"
)

// listCommand creates the list command that shows the service catalog.
func (c *CLI) listCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the services clidoc knows about",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if plain {
				for _, s := range catalog.All() {
					fmt.Fprintf(out, "%s\t%s\n", s.Name(), s)
				}
				return nil
			}
			fmt.Fprintln(out, serviceTable(catalog.All()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "tab-separated output without styling")

	return cmd
}

// serviceTable renders services as a table of display name, canonical name
// and client crate.
func serviceTable(services []catalog.Service) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, len(services))
	for i, s := range services {
		rows[i] = []string{s.String(), s.Name(), s.Crate()}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Service", "Name", "Crate").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle.Padding(0, 1)
			case col == 1:
				return StyleHighlight.Padding(0, 1)
			default:
				return listNormalStyle.Padding(0, 1)
			}
		}).
		String()
}
