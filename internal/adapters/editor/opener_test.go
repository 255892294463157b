package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fakeEnv(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestFindEditor(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		available map[string]bool
		want      string
	}{
		{name: "EDITOR wins", env: map[string]string{"EDITOR": "hx", "VISUAL": "code"}, want: "hx"},
		{name: "VISUAL fallback", env: map[string]string{"VISUAL": "code"}, want: "code"},
		{name: "first installed editor", available: map[string]bool{"vi": true, "nano": true}, want: "/usr/bin/vi"},
		{name: "nothing found", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{
				getenv: fakeEnv(tt.env),
				lookPath: func(name string) (string, error) {
					if tt.available[name] {
						return "/usr/bin/" + name, nil
					}
					return "", errors.New("not found")
				},
			}
			if got := o.findEditor(); got != tt.want {
				t.Errorf("findEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommand(t *testing.T) {
	artifact := filepath.Join(t.TempDir(), "main-out.compiled.js")
	if err := os.WriteFile(artifact, []byte("x();\n"), 0644); err != nil {
		t.Fatal(err)
	}

	o := &Opener{getenv: fakeEnv(map[string]string{"EDITOR": "hx"}), lookPath: func(string) (string, error) {
		return "", errors.New("not found")
	}}

	cmd, err := o.Command(artifact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "hx" || cmd.Args[1] != artifact {
		t.Errorf("unexpected args %v", cmd.Args)
	}

	if _, err := o.Command(filepath.Join(t.TempDir(), "missing.js")); err == nil {
		t.Error("expected error for missing artifact")
	}

	o.getenv = fakeEnv(nil)
	if _, err := o.Command(artifact); err == nil {
		t.Error("expected error when no editor is available")
	}
}
