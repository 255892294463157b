package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PPW_HISTORY_DB", "")
	t.Setenv("PPW_PUBLISH_ENDPOINT", "")

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{}, args...))
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestPathsCommand(t *testing.T) {
	out, err := executeCommand(t, "paths", "/src/main.js", "--outdir", "/build")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		"/src/main.js",
		"/src/main_1.ppw.js",
		"/build/main-out.compiled.js",
		"/build/main_1.dfs.txt",
		"/build/main_2.log.txt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPathsCommand_RejectsDirectory(t *testing.T) {
	if _, err := executeCommand(t, "paths", "/src/", "--outdir", ""); err == nil {
		t.Error("expected error for directory input")
	}
}

func TestHeaderCommand(t *testing.T) {
	depLog := filepath.Join(t.TempDir(), "main_1.dfs.txt")
	if err := os.WriteFile(depLog, []byte("2\n./a.js\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "slots only",
			args: []string{"header", depLog, "--requires=false"},
			want: "var globalVariable_SHYDNUTN_000,globalVariable_SHYDNUTN_001;\n",
		},
		{
			name: "with requires",
			args: []string{"header", depLog, "--requires"},
			want: "var globalVariable_SHYDNUTN_000,globalVariable_SHYDNUTN_001;\nrequire(\"./a.js\");\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tt.want {
				t.Errorf("output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestPrependCommand(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.js")
	depLog := filepath.Join(dir, "deps.txt")
	if err := os.WriteFile(target, []byte("main();\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(depLog, []byte("1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "prepend", target, depLog, "--requires=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Prepended 1 slot(s)") {
		t.Errorf("unexpected output %q", out)
	}

	data, _ := os.ReadFile(target)
	if string(data) != "var globalVariable_SHYDNUTN_000;\nmain();\n" {
		t.Errorf("target content = %q", string(data))
	}
}

func TestHistoryCommand_Disabled(t *testing.T) {
	_, err := executeCommand(t, "history")
	if err == nil || !strings.Contains(err.Error(), "disabled") {
		t.Errorf("expected disabled history error, got %v", err)
	}
}

func TestRootCommand_NoArgs(t *testing.T) {
	if _, err := executeCommand(t); err == nil {
		t.Error("expected error when no command is given")
	}
}

func TestPathsCommand_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	out, err := executeCommand(t, "paths", "~/src/main.js", "--outdir", "~/build")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		filepath.Join(home, "src", "main.js"),
		filepath.Join(home, "build", "main-out.compiled.js"),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectCommand_Print(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.js")
	if err := os.WriteFile(input, []byte("main();\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("EDITOR", "ppw-editor")

	out, err := executeCommand(t, "inspect", input, "--role", "input", "--print")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "ppw-editor " + input + "\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestRunCommand_MissingRuntimeClosesHistory(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "main.js")
	if err := os.WriteFile(input, []byte("main();\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		pf := rootCmd.PersistentFlags()
		for _, name := range []string{"history", "runtime"} {
			f := pf.Lookup(name)
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})

	_, err := executeCommand(t, "run", "--file", input,
		"--runtime", "ppw-no-such-runtime",
		"--history", filepath.Join(dir, "history.db"))
	if err == nil || !strings.Contains(err.Error(), "not found in PATH") {
		t.Fatalf("expected missing runtime error, got %v", err)
	}
	if history != nil {
		t.Error("history still open after a failed command")
	}
	if _, err := os.Stat(filepath.Join(dir, "history.db")); err != nil {
		t.Errorf("history database was not opened: %v", err)
	}
}
