package ui

import (
	"github.com/spf13/cobra"

	"github.com/javiermolinar/taskboard/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		description string
		completed   bool
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a new task to the collection.

Example:
  taskboard add "Buy milk" --description="two litres"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := a.newSession(ctx)
			if err != nil {
				return err
			}
			defer s.close()

			call, err := s.engine.Create(task.Draft{
				Title:       args[0],
				Description: description,
				Completed:   completed,
			})
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

	cmd.Flags().StringVarP(&description, "description", "d", "", "Task description")
	cmd.Flags().BoolVar(&completed, "completed", false, "Create the task already completed")

	return cmd
}
