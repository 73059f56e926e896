package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/config"
	"github.com/javiermolinar/taskboard/internal/gateway"
	"github.com/javiermolinar/taskboard/internal/logging"
	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/reconcile"
	"github.com/javiermolinar/taskboard/internal/task"
	"github.com/javiermolinar/taskboard/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config     *config.Config
	configPath string
	gateway    task.Gateway
	root       *cobra.Command
	in         io.Reader
	out        io.Writer
	debug      bool   // Enable debug logging
	url        string // Overrides remote.base_url
}

// Option configures an App.
type Option func(*App)

// WithGateway makes every command talk to gw instead of the HTTP gateway.
func WithGateway(gw task.Gateway) Option {
	return func(a *App) { a.gateway = gw }
}

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

// WithConfigPath sets the file read and written by `config`.
func WithConfigPath(path string) Option {
	return func(a *App) { a.configPath = path }
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config, opts ...Option) *App {
	a := &App{
		config:     cfg,
		configPath: config.DefaultConfigPath(),
		in:         os.Stdin,
		out:        os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "taskboard",
		Short: "A terminal board for a remote task collection",
		Long: `Taskboard shows the tasks of a REST collection as a board of cards.

Run without arguments to open the interactive board. The subcommands
read and change the same collection from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			gw, err := a.client()
			if err != nil {
				return err
			}
			return tui.Run(gw, a.config, a.debug)
		},
	}
	a.root.SetIn(a.in)
	a.root.SetOut(a.out)

	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging")
	a.root.PersistentFlags().StringVar(&a.url, "url", "", "Base URL of the task collection (overrides config)")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.doneCmd())
	a.root.AddCommand(a.rmCmd())
	a.root.AddCommand(a.serveCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.out, "taskboard %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteContext runs the CLI application with ctx available to commands.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// ExecuteArgs runs the CLI with args instead of os.Args.
func (a *App) ExecuteArgs(ctx context.Context, args ...string) error {
	a.root.SetArgs(args)
	return a.root.ExecuteContext(ctx)
}

// logger is silent unless --debug is set. Failures reach the user as
// returned errors.
func (a *App) logger() *log.Logger {
	if a.debug {
		return logging.Console("debug")
	}
	return logging.Discard()
}

func (a *App) baseURL() string {
	if a.url != "" {
		return a.url
	}
	return a.config.Remote.BaseURL
}

func (a *App) client() (task.Gateway, error) {
	if a.gateway != nil {
		return a.gateway, nil
	}
	base := a.baseURL()
	if base == "" {
		return nil, fmt.Errorf("no base URL configured")
	}
	return gateway.New(base,
		gateway.WithTimeout(a.config.Timeout()),
		gateway.WithLogger(a.logger()),
	), nil
}

// session is one command's view of the collection. Commands change the
// collection through the same engine the board uses.
type session struct {
	store  *board.Store
	queue  *notify.Queue
	engine *reconcile.Engine
}

func (a *App) newSession(ctx context.Context) (*session, error) {
	gw, err := a.client()
	if err != nil {
		return nil, err
	}
	s := &session{
		store: board.NewStore(),
		queue: notify.NewQueue(),
	}
	s.engine = reconcile.New(s.store, gw, s.queue,
		reconcile.WithContext(ctx),
		reconcile.WithLogger(a.logger()),
	)
	return s, nil
}

// close cancels anything the session engine still has in flight.
func (s *session) close() {
	s.engine.Close()
}

// load fetches the collection into the session store.
func (s *session) load(ctx context.Context) error {
	if err := s.engine.Do(ctx, s.engine.Fetch()); err != nil {
		return fmt.Errorf("loading tasks: %w", err)
	}
	return nil
}

// find returns the loaded task id.
func (s *session) find(id int64) (task.Task, error) {
	t, ok := s.store.Find(id)
	if !ok {
		return task.Task{}, fmt.Errorf("task #%d: %w", id, task.ErrTaskNotFound)
	}
	return t, nil
}
