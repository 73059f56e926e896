package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/taskboard/internal/reconcile"
	"github.com/javiermolinar/taskboard/internal/task"
)

func (a *App) rmCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete a task after asking for confirmation.

Example:
  taskboard rm 3
  taskboard rm 3 --yes`,
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
			if _, err := s.find(id); err != nil {
				return err
			}

			confirm := reconcile.Answer(true)
			if !yes {
				confirm = promptConfirmer(bufio.NewReader(a.in), a.out)
			}

			call, err := s.engine.Delete(id, confirm)
			if errors.Is(err, reconcile.ErrConfirmationDeclined) {
				fmt.Fprintln(a.out, "Cancelled.")
				return nil
			}
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

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

// promptConfirmer asks on out and reads the answer from r. Only "y" and
// "yes" confirm.
func promptConfirmer(r *bufio.Reader, out io.Writer) reconcile.Confirmer {
	return reconcile.ConfirmFunc(func(t task.Task) bool {
		return promptYesNo(r, out, fmt.Sprintf("Delete task #%d %q?", t.ID, t.Title))
	})
}

func promptYesNo(r *bufio.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	input, _ := r.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
