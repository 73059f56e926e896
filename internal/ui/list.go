package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/taskboard/internal/tui/view"
)

func (a *App) listCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List every task of the collection in server order.

With --search, only tasks whose title or description contains the term
are shown. The totals always cover the whole collection.`,
		Example: `  taskboard list
  taskboard list --search=milk`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			s, err := a.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()
			if err := s.load(ctx); err != nil {
				return err
			}

			s.store.SetSearch(search)
			p := s.store.Project()

			printStats(a.out, p.Stats)
			fmt.Fprintln(a.out)

			if p.IsEmpty() {
				headline, _ := view.EmptyMessage(p)
				fmt.Fprintln(a.out, formatMuted(headline))
				return nil
			}

			width := termWidth()
			for _, t := range p.Visible {
				printTaskRow(a.out, t, width)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Only show tasks containing this term")

	return cmd
}
