package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"minimal", Config{Patterns: []string{"x"}}, false},
		{"no patterns", Config{}, true},
		{"unknown strategy", Config{Patterns: []string{"x"}, Strategy: "fastest"}, true},
		{"count and files", Config{Patterns: []string{"x"}, CountOnly: true, FilesOnly: true}, true},
		{"json and count", Config{Patterns: []string{"x"}, JSONOutput: true, CountOnly: true}, true},
		{"json and files", Config{Patterns: []string{"x"}, JSONOutput: true, FilesOnly: true}, true},
		{"negative chunk", Config{Patterns: []string{"x"}, ChunkSize: -1}, true},
		{"negative buffer", Config{Patterns: []string{"x"}, BufferSize: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	for _, strategy := range []string{"", "auto", "lines", "mapped", "parallel", "stream"} {
		cfg := Config{Patterns: []string{"x"}, Strategy: strategy}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() with strategy %q: %v", strategy, err)
		}
	}
}

func TestColorMode_Set(t *testing.T) {
	tests := []struct {
		in   string
		want ColorMode
	}{
		{"auto", ColorAuto},
		{"always", ColorAlways},
		{"never", ColorNever},
	}
	for _, tt := range tests {
		var m ColorMode
		if err := m.Set(tt.in); err != nil {
			t.Fatalf("Set(%q) error: %v", tt.in, err)
		}
		if m != tt.want {
			t.Errorf("Set(%q) = %v, want %v", tt.in, m, tt.want)
		}
		if m.String() != tt.in {
			t.Errorf("String() = %q, want %q", m.String(), tt.in)
		}
	}

	var m ColorMode
	if err := m.Set("sometimes"); err == nil {
		t.Error("Set(\"sometimes\") expected error")
	}
}

func TestLoadConfigArgs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")
	content := "# default flags\n--hidden\n\n-n\n  --no-ignore  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("VOLUTA_CONFIG_PATH", path)

	got := LoadConfigArgs()
	want := []string{"--hidden", "-n", "--no-ignore"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LoadConfigArgs() = %v, want %v", got, want)
	}
}

func TestLoadConfigArgs_Missing(t *testing.T) {
	t.Setenv("VOLUTA_CONFIG_PATH", filepath.Join(t.TempDir(), "nope"))
	if got := LoadConfigArgs(); got != nil {
		t.Errorf("LoadConfigArgs() = %v, want nil", got)
	}
}
