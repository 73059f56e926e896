package tui

import (
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/javiermolinar/taskboard/internal/logging"
	"github.com/javiermolinar/taskboard/internal/modal"
)

// DebugLogPath is the fixed path for debug logs.
const DebugLogPath = "taskboard-debug.log"

var (
	debugMu  sync.Mutex
	debugLog = logging.Discard()
	debugOut io.Closer
)

// InitDebugLogger starts writing JSON debug events to DebugLogPath when
// enabled. The returned logger is the one events go to.
func InitDebugLogger(enabled bool) (*log.Logger, error) {
	debugMu.Lock()
	defer debugMu.Unlock()

	if !enabled {
		debugLog = logging.Discard()
		return debugLog, nil
	}
	logger, closer, err := logging.File(DebugLogPath)
	if err != nil {
		return nil, err
	}
	debugLog, debugOut = logger, closer
	debugLog.Debug("debug start", "log_file", DebugLogPath)
	return debugLog, nil
}

// CloseDebugLogger closes the debug log file.
func CloseDebugLogger() {
	debugMu.Lock()
	defer debugMu.Unlock()

	if debugOut == nil {
		return
	}
	debugLog.Debug("debug end")
	_ = debugOut.Close()
	debugOut = nil
	debugLog = logging.Discard()
}

func debugLogger() *log.Logger {
	debugMu.Lock()
	defer debugMu.Unlock()
	return debugLog
}

// LogKeyPress logs a key press event.
func LogKeyPress(msg tea.KeyMsg, focus modal.Target) {
	debugLogger().Debug("key press", "key", msg.String(), "region", regionName(focus.Region), "id", focus.ID)
}

// LogFocusChange logs a focus move.
func LogFocusChange(from, to modal.Target) {
	debugLogger().Debug("focus change",
		"from", regionName(from.Region), "from_id", from.ID,
		"to", regionName(to.Region), "to_id", to.ID)
}

// LogError logs an error.
func LogError(context string, err error) {
	debugLogger().Error(context, "err", err)
}

func regionName(r modal.Region) string {
	switch r {
	case modal.RegionBoard:
		return "board"
	case modal.RegionSidebar:
		return "sidebar"
	case modal.RegionSearch:
		return "search"
	case modal.RegionFormTitle:
		return "form_title"
	case modal.RegionFormDescription:
		return "form_description"
	case modal.RegionFormCompleted:
		return "form_completed"
	default:
		return "none"
	}
}
