package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/javiermolinar/taskboard/internal/board"
	"github.com/javiermolinar/taskboard/internal/config"
	"github.com/javiermolinar/taskboard/internal/modal"
	"github.com/javiermolinar/taskboard/internal/notify"
	"github.com/javiermolinar/taskboard/internal/reconcile"
	"github.com/javiermolinar/taskboard/internal/task"
	"github.com/javiermolinar/taskboard/internal/tui/theme"
)

// appTitle is shown on the left of the header.
const appTitle = "Taskboard"

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	engine *reconcile.Engine
	store  *board.Store
	queue  *notify.Queue
	dialog *modal.Controller
	form   *taskForm
	focus  *focusRing
	ctx    context.Context
	cancel context.CancelFunc
	logger *log.Logger
	now    func() time.Time

	// Theme and styles
	theme      *theme.Theme
	styles     *Styles
	styleCache StyleCache

	// Components
	keys    keyMap
	help    help.Model
	spinner spinner.Model
	search  *textinput.Model
	overlay OverlayModel

	// Focus and overlay state
	boardIndex    int
	sidebarActive int
	confirming    bool
	confirmID     int64
	showHelp      bool
	spinning      bool
	// dialogSeq numbers dialog openings so a late entry transition from
	// an earlier opening is ignored.
	dialogSeq int

	// Terminal dimensions and layout
	width       int
	height      int
	layoutCache LayoutCache
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger the engine reports to.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithContext sets the parent context of every remote call.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) { m.ctx = ctx }
}

// WithClock sets the time source used for toasts.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) { m.now = now }
}

// New creates a new TUI model talking to gw.
func New(gw task.Gateway, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	m := &Model{
		config:  cfg,
		theme:   t,
		styles:  styles,
		keys:    newKeyMap(),
		help:    help.New(),
		overlay: NewOverlayModel(),
		ctx:     context.Background(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.ctx, m.cancel = context.WithCancel(m.ctx)

	m.help.Styles.ShortKey = styles.FooterStyle.Foreground(styles.colorAccent).Padding(0)
	m.help.Styles.ShortDesc = styles.FooterStyle.Padding(0)
	m.help.Styles.ShortSeparator = styles.FooterStyle.Padding(0)
	m.help.Styles.FullKey = styles.ModalBodyStyle.Foreground(styles.colorAccent)
	m.help.Styles.FullDesc = styles.ModalBodyStyle
	m.help.Styles.FullSeparator = styles.ModalBodyStyle

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.StateMessageStyle.Foreground(styles.colorAccent)
	m.spinner = sp

	search := textinput.New()
	search.Placeholder = "Search tasks..."
	search.Prompt = "/ "
	search.CharLimit = 128
	search.PlaceholderStyle = styles.SearchPlaceholder
	search.TextStyle = styles.SearchTextStyle
	search.PromptStyle = styles.SearchPlaceholder
	m.search = &search

	// The store is explicitly constructed here and shared by every part
	// of this client instance.
	m.store = board.NewStore(board.WithLayout(board.ParseLayout(cfg.UI.Layout)))
	m.queue = notify.NewQueue(notify.WithClock(m.now))
	m.form = newTaskForm(styles)
	m.focus = newFocusRing(m.store, m.form, m.search)
	m.dialog = modal.New(m.form, m.focus, m.queue)
	m.focus.formOpen = m.dialog.IsOpen

	engineOpts := []reconcile.Option{
		reconcile.WithModal(m.dialog),
		reconcile.WithContext(m.ctx),
	}
	if m.logger != nil {
		engineOpts = append(engineOpts, reconcile.WithLogger(m.logger))
	}
	m.engine = reconcile.New(m.store, gw, m.queue, engineOpts...)

	m.styleCache = NewStyleCache(styles)
	m.layoutCache = m.buildLayoutCache(0, 0)
	return m
}

// Init starts the first fetch. The spinner starts ticking on the first
// update that sees a pending fetch.
func (m Model) Init() tea.Cmd {
	return m.fetch()
}

// Close cancels in-flight remote calls.
func (m Model) Close() {
	m.engine.Close()
	m.cancel()
}

// Store returns the task store backing the board.
func (m Model) Store() *board.Store {
	return m.store
}

// Run starts the TUI.
func Run(gw task.Gateway, cfg *config.Config, debug bool) error {
	logger, err := InitDebugLogger(debug)
	if err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(gw, cfg, WithLogger(logger))
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
