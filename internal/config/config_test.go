package config

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points HOME, XDG_CONFIG_HOME and the working directory at fresh
// temporary directories and clears planner environment variables.
func isolate(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{
		"PLANNER_TODO", "PLANNER_PROMPT", "PLANNER_COLOR", "NO_COLOR",
		"PLANNER_LOG_LEVEL", "PLANNER_LOG_FORMAT", "PLANNER_LOG_FILE",
		"PLANNER_LOG_TIMESTAMPS", "PLANNER_LOG_CALLER",
	} {
		t.Setenv(key, "")
	}
	t.Chdir(project)
	return home, project
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("planner", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	home, _ := isolate(t)

	cws, err := LoadWithSources(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("LoadWithSources() error = %v", err)
	}
	cfg := cws.Config

	wantTodo := filepath.Join(home, ".planner", "todos.json")
	if cfg.TodoFile != wantTodo {
		t.Errorf("TodoFile: got %q, want %q", cfg.TodoFile, wantTodo)
	}
	if cfg.Prompt != DefaultPrompt {
		t.Errorf("Prompt: got %q, want %q", cfg.Prompt, DefaultPrompt)
	}
	if !cfg.Color {
		t.Error("Color: got false, want true")
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != "text" {
		t.Errorf("logging: got %s/%s, want warn/text", cfg.LogLevel, cfg.LogFormat)
	}
	for _, field := range Fields() {
		if cws.Sources[field] != SourceDefault {
			t.Errorf("source of %s: got %q, want default", field, cws.Sources[field])
		}
	}
	if cws.ConfigFile() != "" {
		t.Errorf("ConfigFile(): got %q, want none", cws.ConfigFile())
	}
}

func TestLoadConfigFiles(t *testing.T) {
	home, project := isolate(t)

	writeFile(t, filepath.Join(home, ".planner", "planner.toml"), `
prompt = "user> "
log_level = "info"
color = false
`)
	writeFile(t, filepath.Join(project, "planner.toml"), `
prompt = "project> "
todo_file = "todos.json"
`)

	cws, err := LoadWithSources(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("LoadWithSources() error = %v", err)
	}
	cfg := cws.Config

	if cfg.Prompt != "project> " {
		t.Errorf("Prompt: got %q, want project> ", cfg.Prompt)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel: got %q, want info", cfg.LogLevel)
	}
	if cfg.Color {
		t.Error("Color: got true, want false from user file")
	}
	if cfg.TodoFile != filepath.Join(project, "todos.json") {
		t.Errorf("TodoFile: got %q, want it resolved against the working directory", cfg.TodoFile)
	}

	wantSources := map[string]ConfigSource{
		"prompt":     SourceProjFile,
		"todo_file":  SourceProjFile,
		"log_level":  SourceUserFile,
		"color":      SourceUserFile,
		"log_format": SourceDefault,
	}
	for field, want := range wantSources {
		if got := cws.Sources[field]; got != want {
			t.Errorf("source of %s: got %q, want %q", field, got, want)
		}
	}
	if len(cws.Files) != 2 || cws.ConfigFile() != "planner.toml" {
		t.Errorf("Files: got %v", cws.Files)
	}
}

func TestXDGUserConfig(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".config", "planner", "planner.toml"), `prompt = "xdg> "`)

	cfg, err := Load(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Prompt != "xdg> " {
		t.Errorf("Prompt: got %q, want xdg> ", cfg.Prompt)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "prompt = ", "loading project config file"},
		{"unknown key", `max_iterations = 3`, "unknown keys: max_iterations"},
		{"wrong type", `color = "yes"`, "loading project config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, project := isolate(t)
			writeFile(t, filepath.Join(project, ".planner.toml"), tt.content)

			_, err := Load(newFlagSet(), nil)
			if err == nil {
				t.Fatal("Load() error = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	_, project := isolate(t)
	writeFile(t, filepath.Join(project, "planner.toml"), `log_level = "info"`)

	t.Setenv("PLANNER_TODO", "custom.json")
	t.Setenv("PLANNER_LOG_LEVEL", "debug")
	t.Setenv("PLANNER_LOG_TIMESTAMPS", "yes")
	t.Setenv("NO_COLOR", "1")

	cws, err := LoadWithSources(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("LoadWithSources() error = %v", err)
	}
	cfg := cws.Config

	if cfg.TodoFile != filepath.Join(project, "custom.json") {
		t.Errorf("TodoFile: got %q", cfg.TodoFile)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel: got %q, want debug (env beats project file)", cfg.LogLevel)
	}
	if !cfg.LogTimestamps {
		t.Error("LogTimestamps: got false, want true")
	}
	if cfg.Color {
		t.Error("Color: NO_COLOR did not disable color")
	}
	for _, field := range []string{"todo_file", "log_level", "log_timestamps", "color"} {
		if cws.Sources[field] != SourceEnv {
			t.Errorf("source of %s: got %q, want environment", field, cws.Sources[field])
		}
	}
}

func TestParseFlags(t *testing.T) {
	_, project := isolate(t)
	t.Setenv("PLANNER_PROMPT", "env> ")
	t.Setenv("PLANNER_LOG_FORMAT", "json")

	fs := newFlagSet()
	cws, err := LoadWithSources(fs, []string{
		"--prompt", "flag> ",
		"--todo", filepath.Join(project, "x.json"),
		"--no-color",
		"list",
	})
	if err != nil {
		t.Fatalf("LoadWithSources() error = %v", err)
	}
	cfg := cws.Config

	if cfg.Prompt != "flag> " {
		t.Errorf("Prompt: got %q, want flag> ", cfg.Prompt)
	}
	if cfg.LogFormat != "json" {
		t.Errorf("LogFormat: got %q, want json from env", cfg.LogFormat)
	}
	if cfg.Color {
		t.Error("Color: --no-color ignored")
	}
	if cws.Sources["prompt"] != SourceFlag || cws.Sources["color"] != SourceFlag {
		t.Errorf("sources: %v", cws.Sources)
	}
	if cws.Sources["log_format"] != SourceEnv {
		t.Errorf("source of log_format: got %q, want environment", cws.Sources["log_format"])
	}
	if args := fs.Args(); len(args) != 1 || args[0] != "list" {
		t.Errorf("remaining args: got %v, want [list]", args)
	}
}

func TestInvalidLogSettings(t *testing.T) {
	isolate(t)

	if _, err := Load(newFlagSet(), []string{"--log-level", "loud"}); err == nil {
		t.Error("Load() accepted log level loud")
	}
	if _, err := Load(newFlagSet(), []string{"--log-format", "xml"}); err == nil {
		t.Error("Load() accepted log format xml")
	}

	cfg, err := Load(newFlagSet(), []string{"--log-level", "WARNING"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel: got %q, want warn", cfg.LogLevel)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("PLANNER_TEST_DIR", "/data")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"~", home},
		{"~/todos.json", filepath.Join(home, "todos.json")},
		{"$PLANNER_TEST_DIR/todos.json", "/data/todos.json"},
		{"/abs/todos.json", "/abs/todos.json"},
		{"~user/x", "~user/x"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.in); got != tt.want {
			t.Errorf("expandPath(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValue(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.LogCaller = true

	if got := cfg.Value("log_caller"); got != "true" {
		t.Errorf("Value(log_caller): got %q", got)
	}
	if got := cfg.Value("prompt"); got != DefaultPrompt {
		t.Errorf("Value(prompt): got %q", got)
	}
	if got := cfg.Value("nope"); got != "" {
		t.Errorf("Value(nope): got %q", got)
	}
}

func TestExampleConfigParses(t *testing.T) {
	_, project := isolate(t)
	writeFile(t, filepath.Join(project, "planner.toml"), ExampleConfig())

	if _, err := Load(newFlagSet(), nil); err != nil {
		t.Fatalf("example config does not load: %v", err)
	}
}
