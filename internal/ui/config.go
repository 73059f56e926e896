package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/taskboard/internal/config"
	"github.com/javiermolinar/taskboard/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	var initOnly bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.
With --init, only writes the defaults when the file is missing.

Example:
  taskboard config
  taskboard config --init`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if initOnly {
				return a.initConfig()
			}
			return a.runConfigInteractive()
		},
	}

	cmd.Flags().BoolVar(&initOnly, "init", false, "Write the default config if none exists")

	return cmd
}

func (a *App) configExists() (bool, error) {
	_, err := os.Stat(a.configPath)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking config file: %w", err)
	}
}

func (a *App) initConfig() error {
	exists, err := a.configExists()
	if err != nil {
		return err
	}
	if exists {
		fmt.Fprintf(a.out, "Config already exists at %s\n", a.configPath)
		return nil
	}
	if err := config.Default().SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	fmt.Fprintf(a.out, "Created %s\n", a.configPath)
	return nil
}

func (a *App) runConfigInteractive() error {
	fmt.Fprintf(a.out, "Config file: %s\n\n", a.configPath)

	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	exists, err := a.configExists()
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(a.out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(a.configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Fprintf(a.out, "Created %s\n\n", a.configPath)
	}

	printConfig(a.out, cfg)

	reader := bufio.NewReader(a.in)
	fmt.Fprintln(a.out)
	if !promptYesNo(reader, a.out, "Would you like to edit the configuration?") {
		return nil
	}

	cfg.Remote.BaseURL = promptValue(reader, a.out, "Base URL", cfg.Remote.BaseURL)
	cfg.Remote.Timeout = promptValue(reader, a.out, "Request timeout", cfg.Remote.Timeout)
	cfg.Server.Addr = promptValue(reader, a.out, "Server address", cfg.Server.Addr)
	cfg.Storage.DBPath = promptValue(reader, a.out, "Database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptTheme(reader, a.out, cfg.UI.Theme)
	cfg.UI.Layout = promptValue(reader, a.out, "Layout (grid, list)", cfg.UI.Layout)
	cfg.Log.Level = promptValue(reader, a.out, "Log level", cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if err := cfg.SaveTo(a.configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintln(a.out, "\nConfiguration saved!")
	return nil
}

func printConfig(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, formatHeader("Current configuration:"))
	fmt.Fprintln(w, "──────────────────────")
	fmt.Fprintln(w, "[remote]")
	fmt.Fprintf(w, "  base_url = %s\n", cfg.Remote.BaseURL)
	fmt.Fprintf(w, "  timeout  = %s\n", cfg.Remote.Timeout)
	fmt.Fprintln(w, "\n[server]")
	fmt.Fprintf(w, "  addr     = %s\n", cfg.Server.Addr)
	fmt.Fprintln(w, "\n[storage]")
	fmt.Fprintf(w, "  db_path  = %s\n", cfg.Storage.DBPath)
	fmt.Fprintln(w, "\n[ui]")
	fmt.Fprintf(w, "  theme    = %s\n", cfg.UI.Theme)
	fmt.Fprintf(w, "  layout   = %s\n", cfg.UI.Layout)
	fmt.Fprintln(w, "\n[log]")
	fmt.Fprintf(w, "  level    = %s\n", cfg.Log.Level)
}

func promptValue(reader *bufio.Reader, out io.Writer, label, current string) string {
	if current == "" {
		fmt.Fprintf(out, "  %s: ", label)
	} else {
		fmt.Fprintf(out, "  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

// promptTheme asks until a known theme is given. EOF keeps the current
// theme.
func promptTheme(reader *bufio.Reader, out io.Writer, current string) string {
	options := strings.Join(theme.Available(), ", ")
	label := fmt.Sprintf("UI theme (%s)", options)
	for {
		value := strings.ToLower(promptValue(reader, out, label, current))
		if theme.IsAvailable(value) {
			return value
		}
		fmt.Fprintf(out, "  Invalid theme %q. Available: %s\n", value, options)
		if _, err := reader.Peek(1); err != nil {
			return current
		}
	}
}
