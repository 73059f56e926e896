package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/taskboard/internal/config"
	"github.com/javiermolinar/taskboard/internal/reconcile"
	"github.com/javiermolinar/taskboard/internal/task"
	"github.com/javiermolinar/taskboard/internal/testutil"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

func seedGateway() *testutil.FakeGateway {
	return testutil.NewFakeGateway(
		task.Task{Title: "Buy milk", Description: "two litres"},
		task.Task{Title: "Write report", Completed: true},
		task.Task{Title: "Call mom"},
	)
}

type testApp struct {
	app *App
	out *bytes.Buffer
}

func newTestApp(t *testing.T, gw task.Gateway, stdin string) *testApp {
	t.Helper()
	out := &bytes.Buffer{}
	app := NewApp(config.Default(),
		WithGateway(gw),
		WithIO(strings.NewReader(stdin), out),
		WithConfigPath(filepath.Join(t.TempDir(), "config.toml")),
	)
	return &testApp{app: app, out: out}
}

func (ta *testApp) run(args ...string) error {
	return ta.app.ExecuteArgs(context.Background(), args...)
}

func findTask(t *testing.T, gw *testutil.FakeGateway, id int64) task.Task {
	t.Helper()
	for _, tk := range gw.Tasks() {
		if tk.ID == id {
			return tk
		}
	}
	t.Fatalf("task #%d not in gateway", id)
	return task.Task{}
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"3", 3, false},
		{"#12", 12, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseID(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseID(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseID(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	ta := newTestApp(t, seedGateway(), "")
	if err := ta.run("version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	if got := ta.out.String(); !strings.HasPrefix(got, "taskboard "+Version) {
		t.Errorf("output = %q", got)
	}
}

func TestList(t *testing.T) {
	ta := newTestApp(t, seedGateway(), "")
	if err := ta.run("list"); err != nil {
		t.Fatalf("list: %v", err)
	}

	out := ta.out.String()
	for _, want := range []string{"3 total", "1 completed", "2 active", "#1 Buy milk", "two litres", "#2", "Write report", "#3 Call mom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "Buy milk") > strings.Index(out, "Call mom") {
		t.Error("tasks should print in server order")
	}
}

func TestList_Search(t *testing.T) {
	ta := newTestApp(t, seedGateway(), "")
	if err := ta.run("list", "--search", "MILK"); err != nil {
		t.Fatalf("list: %v", err)
	}

	out := ta.out.String()
	if !strings.Contains(out, "Buy milk") {
		t.Errorf("matching task missing:\n%s", out)
	}
	if strings.Contains(out, "Call mom") {
		t.Errorf("non-matching task listed:\n%s", out)
	}
	if !strings.Contains(out, "3 total") {
		t.Errorf("totals should cover the whole collection:\n%s", out)
	}
}

func TestList_EmptyStates(t *testing.T) {
	ta := newTestApp(t, testutil.NewFakeGateway(), "")
	if err := ta.run("list"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(ta.out.String(), "No tasks yet") {
		t.Errorf("output = %q", ta.out.String())
	}

	ta = newTestApp(t, seedGateway(), "")
	if err := ta.run("list", "--search", "zebra"); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(ta.out.String(), `No tasks match "zebra"`) {
		t.Errorf("output = %q", ta.out.String())
	}
}

func TestList_GatewayFailure(t *testing.T) {
	gw := seedGateway()
	boom := errors.New("connection refused")
	gw.ListErr = boom

	ta := newTestApp(t, gw, "")
	err := ta.run("list")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapping %v", err, boom)
	}
	if !reconcile.IsGateway(err) {
		t.Errorf("err = %T, want a gateway error", err)
	}
}

func TestSession_CloseStopsEngine(t *testing.T) {
	ta := newTestApp(t, seedGateway(), "")
	s, err := ta.app.newSession(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if err := s.load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.close()
	err = s.load(context.Background())
	if !errors.Is(err, reconcile.ErrClosed) {
		t.Fatalf("err = %v, want the closed engine to refuse work", err)
	}
	if s.store.Len() != 3 {
		t.Errorf("len = %d, store changed after close", s.store.Len())
	}
}

func TestAdd(t *testing.T) {
	gw := seedGateway()
	ta := newTestApp(t, gw, "")
	if err := ta.run("add", "Water plants", "--description", "balcony"); err != nil {
		t.Fatalf("add: %v", err)
	}

	tasks := gw.Tasks()
	if len(tasks) != 4 {
		t.Fatalf("len(tasks) = %d, want 4", len(tasks))
	}
	got := tasks[3]
	if got.Title != "Water plants" || got.Description != "balcony" || got.Completed {
		t.Errorf("created %+v", got)
	}
	if !strings.Contains(ta.out.String(), reconcile.MsgCreated) {
		t.Errorf("output = %q", ta.out.String())
	}
}

func TestAdd_BlankTitle(t *testing.T) {
	gw := seedGateway()
	ta := newTestApp(t, gw, "")
	err := ta.run("add", "   ")
	if !reconcile.IsValidation(err) {
		t.Fatalf("err = %v, want a validation error", err)
	}
	if gw.Calls("Create") != 0 {
		t.Error("a blank title must not reach the gateway")
	}
}

func TestAdd_GatewayFailure(t *testing.T) {
	gw := seedGateway()
	gw.CreateErr = errors.New("503")
	ta := newTestApp(t, gw, "")

	if err := ta.run("add", "Water plants"); !reconcile.IsGateway(err) {
		t.Fatalf("err = %v, want a gateway error", err)
	}
	if len(gw.Tasks()) != 3 {
		t.Error("collection should be unchanged")
	}
}

func TestEdit_KeepsUnsetFields(t *testing.T) {
	gw := seedGateway()
	ta := newTestApp(t, gw, "")
	if err := ta.run("edit", "1", "--title", "Buy oat milk"); err != nil {
		t.Fatalf("edit: %v", err)
	}

	got := findTask(t, gw, 1)
	want := task.Task{ID: 1, Title: "Buy oat milk", Description: "two litres"}
	if got != want {
		t.Errorf("task = %+v, want %+v", got, want)
	}
	if !strings.Contains(ta.out.String(), reconcile.MsgUpdated) {
		t.Errorf("output = %q", ta.out.String())
	}
}

func TestEdit_Completed(t *testing.T) {
	gw := seedGateway()
	ta := newTestApp(t, gw, "")
	if err := ta.run("edit", "2", "--completed=false", "--description", ""); err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got := findTask(t, gw, 2); got.Completed || got.Title != "Write report" {
		t.Errorf("task = %+v", got)
	}
}

func TestEdit_UnknownTask(t *testing.T) {
	gw := seedGateway()
	ta := newTestApp(t, gw, "")
	err := ta.run("edit", "42", "--title", "x")
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
	if gw.Calls("Update") != 0 {
		t.Error("unknown task must not reach the gateway")
	}
}

func TestDone_Toggles(t *testing.T) {
	gw := seedGateway()
	ta := newTestApp(t, gw, "")
	if err := ta.run("done", "3"); err != nil {
		t.Fatalf("done: %v", err)
	}
	if !findTask(t, gw, 3).Completed {
		t.Error("task should be completed")
	}
	if !strings.Contains(ta.out.String(), symbolDone) {
		t.Errorf("output = %q", ta.out.String())
	}

	ta = newTestApp(t, gw, "")
	if err := ta.run("done", "3"); err != nil {
		t.Fatalf("done: %v", err)
	}
	if findTask(t, gw, 3).Completed {
		t.Error("second toggle should reopen the task")
	}
}

func TestDone_GatewayFailure(t *testing.T) {
	gw := seedGateway()
	gw.UpdateErr = errors.New("timeout")
	ta := newTestApp(t, gw, "")

	if err := ta.run("done", "1"); !reconcile.IsGateway(err) {
		t.Fatalf("err = %v, want a gateway error", err)
	}
	if findTask(t, gw, 1).Completed {
		t.Error("remote task should be unchanged")
	}
}

func TestRm(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		stdin       string
		wantDeleted bool
		wantOut     string
	}{
		{"yes flag", []string{"rm", "2", "--yes"}, "", true, reconcile.MsgDeleted},
		{"answered yes", []string{"rm", "2"}, "y\n", true, `Delete task #2 "Write report"?`},
		{"answered no", []string{"rm", "2"}, "n\n", false, "Cancelled."},
		{"no answer", []string{"rm", "2"}, "", false, "Cancelled."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := seedGateway()
			ta := newTestApp(t, gw, tt.stdin)
			if err := ta.run(tt.args...); err != nil {
				t.Fatalf("rm: %v", err)
			}

			deleted := len(gw.Tasks()) == 2
			if deleted != tt.wantDeleted {
				t.Errorf("deleted = %v, want %v", deleted, tt.wantDeleted)
			}
			if !tt.wantDeleted && gw.Calls("Delete") != 0 {
				t.Error("declined delete reached the gateway")
			}
			if !strings.Contains(ta.out.String(), tt.wantOut) {
				t.Errorf("output missing %q:\n%s", tt.wantOut, ta.out.String())
			}
		})
	}
}

func TestRm_GatewayFailure(t *testing.T) {
	gw := seedGateway()
	gw.DeleteErr = errors.New("500")
	ta := newTestApp(t, gw, "")

	if err := ta.run("rm", "1", "--yes"); !reconcile.IsGateway(err) {
		t.Fatalf("err = %v, want a gateway error", err)
	}
	if len(gw.Tasks()) != 3 {
		t.Error("collection should be unchanged")
	}
}

func TestConfigInit(t *testing.T) {
	ta := newTestApp(t, seedGateway(), "")
	if err := ta.run("config", "--init"); err != nil {
		t.Fatalf("config --init: %v", err)
	}
	if _, err := os.Stat(ta.app.configPath); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(ta.out.String(), "Created") {
		t.Errorf("output = %q", ta.out.String())
	}

	ta.out.Reset()
	if err := ta.run("config", "--init"); err != nil {
		t.Fatalf("config --init: %v", err)
	}
	if !strings.Contains(ta.out.String(), "already exists") {
		t.Errorf("output = %q", ta.out.String())
	}
}

func TestConfigInteractive(t *testing.T) {
	for _, key := range []string{"TASKBOARD_URL", "TASKBOARD_UI_THEME", "TASKBOARD_UI_LAYOUT"} {
		t.Setenv(key, "")
	}

	stdin := strings.Join([]string{
		"y",                      // edit?
		"http://tasks.local/api", // base URL
		"",                       // timeout
		"",                       // addr
		"",                       // db path
		"nord",                   // invalid theme
		"latte",                  // theme
		"list",                   // layout
		"",                       // log level
	}, "\n") + "\n"

	ta := newTestApp(t, seedGateway(), stdin)
	if err := ta.run("config"); err != nil {
		t.Fatalf("config: %v", err)
	}

	out := ta.out.String()
	for _, want := range []string{"[remote]", "base_url = http://localhost:8080/api", `Invalid theme "nord"`, "Configuration saved!"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	cfg, err := config.LoadFrom(ta.app.configPath)
	if err != nil {
		t.Fatalf("loading saved config: %v", err)
	}
	if cfg.Remote.BaseURL != "http://tasks.local/api" || cfg.UI.Theme != "latte" || cfg.UI.Layout != "list" {
		t.Errorf("saved config = %+v", cfg)
	}
	if cfg.Remote.Timeout != "10s" {
		t.Errorf("timeout = %q, want the default kept", cfg.Remote.Timeout)
	}
}

func TestConfigInteractive_Declined(t *testing.T) {
	ta := newTestApp(t, seedGateway(), "n\n")
	if err := ta.run("config"); err != nil {
		t.Fatalf("config: %v", err)
	}
	if strings.Contains(ta.out.String(), "Configuration saved!") {
		t.Error("declining should not save")
	}
}

func TestClient_URLFlagOverridesConfig(t *testing.T) {
	app := NewApp(config.Default())
	app.url = "http://override:9000/api"
	if got := app.baseURL(); got != "http://override:9000/api" {
		t.Errorf("baseURL() = %q", got)
	}
	gw, err := app.client()
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	if gw == nil {
		t.Fatal("client returned nil gateway")
	}
}
