package ui

import "github.com/spf13/cobra"

func (a *App) editCmd() *cobra.Command {
	var (
		title       string
		description string
		completed   bool
	)

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Edit a task",
		Long: `Replace the fields of a task. Fields without a flag keep their
current value.

Example:
  taskboard edit 3 --title="Buy oat milk"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()
			if err := s.load(ctx); err != nil {
				return err
			}
			t, err := s.find(id)
			if err != nil {
				return err
			}

			d := t.Draft()
			flags := cmd.Flags()
			if flags.Changed("title") {
				d.Title = title
			}
			if flags.Changed("description") {
				d.Description = description
			}
			if flags.Changed("completed") {
				d.Completed = completed
			}

			call, err := s.engine.Update(id, d)
			if err != nil {
				return err
			}
			if err := s.engine.Do(ctx, call); err != nil {
				return err
			}

			printNotices(a.out, s.queue)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "New title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "New description")
	cmd.Flags().BoolVar(&completed, "completed", false, "Completed state")

	return cmd
}

func (a *App) doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done [id]",
		Short: "Toggle whether a task is completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()
			if err := s.load(ctx); err != nil {
				return err
			}
			if _, err := s.find(id); err != nil {
				return err
			}

			if err := s.engine.Do(ctx, s.engine.Toggle(id)); err != nil {
				return err
			}

			t, _ := s.store.Find(id)
			printTaskRow(a.out, t, termWidth())
			return nil
		},
	}
}
