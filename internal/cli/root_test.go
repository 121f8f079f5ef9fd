package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nixinit/nixinit/internal/defs"
)

// runCLI executes a fresh command tree with the given stdin and args.
// Tests using it must not run in parallel because dependencies are global.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := newRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func writeNoColorConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nixinit.yaml")
	if err := os.WriteFile(path, []byte("no_color: true\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestRootCmd_HasFlags(t *testing.T) {
	cmd := newRootCmd()

	for _, name := range []string{"language", "dir", "dry-run", "tui"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("root command should have --%s flag", name)
		}
	}
	for _, name := range []string{"config", "verbose"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have persistent --%s flag", name)
		}
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := newRootCmd()

	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"languages", "render"} {
		if !names[want] {
			t.Errorf("subcommand %q not registered", want)
		}
	}
}

func TestInit_PromptCreatesFiles(t *testing.T) {
	dir := t.TempDir()

	stdout, stderr, err := runCLI(t, "foo\ngo\n", "--dir", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stderr != "" {
		t.Errorf("stderr = %q, want empty", stderr)
	}

	if strings.Count(stdout, invalidMessage) != 1 {
		t.Errorf("expected one invalid message, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Creating a new Go project") {
		t.Errorf("missing progress line in:\n%s", stdout)
	}

	shell := readFile(t, filepath.Join(dir, defs.ShellNix))
	if !strings.Contains(shell, "buildInputs = with pkgs; [ \n    go\n  ];") {
		t.Errorf("unexpected shell.nix:\n%s", shell)
	}
	if got := readFile(t, filepath.Join(dir, defs.EnvRC)); got != "use nix" {
		t.Errorf(".envrc = %q, want %q", got, "use nix")
	}
}

func TestInit_LanguageFlag(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCLI(t, "", "--language", "RUST", "--dir", dir, "--config", writeNoColorConfig(t))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if strings.Contains(stdout, "Please choose a language") {
		t.Error("--language should skip the prompt")
	}
	if !strings.Contains(stdout, "Project environment created") {
		t.Errorf("missing summary in:\n%s", stdout)
	}

	shell := readFile(t, filepath.Join(dir, defs.ShellNix))
	if !strings.Contains(shell, "export LD_LIBRARY_PATH=$NIX_LD_LIBRARY_PATH") {
		t.Errorf("rust shell.nix missing hook:\n%s", shell)
	}
}

func TestInit_InvalidLanguageFlag(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCLI(t, "", "--language", "cobol", "--dir", dir)
	if err == nil {
		t.Fatal("expected error for unknown --language")
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("no files should be written, found %d", len(entries))
	}
}

func TestInit_InputClosed(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCLI(t, "foo\n", "--dir", dir)
	if err == nil || !strings.Contains(err.Error(), ErrInputClosed.Error()) {
		t.Fatalf("Execute() error = %v, want ErrInputClosed", err)
	}
}

func TestInit_ExistingFilesNotOverwritten(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := runCLI(t, "go\n", "--dir", dir); err != nil {
		t.Fatalf("first run error = %v", err)
	}
	first := readFile(t, filepath.Join(dir, defs.ShellNix))

	_, stderr, err := runCLI(t, "java\n", "--dir", dir)
	if err != nil {
		t.Fatalf("second run should not fail the command, got %v", err)
	}

	for _, want := range []string{
		"Error: File shell.nix already exists",
		"Error: File .envrc already exists",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("stderr missing %q:\n%s", want, stderr)
		}
	}
	if got := readFile(t, filepath.Join(dir, defs.ShellNix)); got != first {
		t.Error("shell.nix was modified by the second run")
	}
}

func TestInit_PartialConflict(t *testing.T) {
	dir := t.TempDir()

	envrc := filepath.Join(dir, defs.EnvRC)
	if err := os.WriteFile(envrc, []byte("dotenv\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, stderr, err := runCLI(t, "", "-l", "java", "-C", dir, "--config", writeNoColorConfig(t))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(stdout, "Created shell.nix") {
		t.Errorf("stdout missing created line:\n%s", stdout)
	}
	if !strings.Contains(stderr, "Error: File .envrc already exists") {
		t.Errorf("stderr missing conflict:\n%s", stderr)
	}
	if got := readFile(t, envrc); got != "dotenv\n" {
		t.Errorf(".envrc changed to %q", got)
	}
	if !strings.Contains(readFile(t, filepath.Join(dir, defs.ShellNix)), "jdk") {
		t.Error("shell.nix should list jdk")
	}
}

func TestInit_DryRun(t *testing.T) {
	dir := t.TempDir()

	stdout, _, err := runCLI(t, "", "-l", "nodejs", "-C", dir, "--dry-run", "--config", writeNoColorConfig(t))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"Would create shell.nix",
		"Would create .envrc",
		"--- shell.nix ---",
		"nodejs_20",
		"--- .envrc ---\nuse nix",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stdout missing %q:\n%s", want, stdout)
		}
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("dry run wrote %d files", len(entries))
	}
}

func TestInit_MissingConfig(t *testing.T) {
	_, _, err := runCLI(t, "", "-l", "go", "-C", t.TempDir(), "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLanguagesCmd_PlainMarkdown(t *testing.T) {
	stdout, _, err := runCLI(t, "", "languages")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, want := range []string{
		"# Supported languages",
		"| Rust | `rust` | cargo, rustc, rustfmt |",
		"| Go | `go` | go | - |",
		"`export DOTNET_CLI_TELEMETRY_OPTOUT=1`<br>`export DOTNET_ROOT=${pkgs.dotnet-sdk}`",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("languages output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRenderCmd(t *testing.T) {
	stdout, _, err := runCLI(t, "", "render", "Go")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "{ pkgs ? import <nixpkgs> {} }:") {
		t.Errorf("render output:\n%s", stdout)
	}

	stdout, _, err = runCLI(t, "", "render", "rust", "--envrc")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if stdout != "use nix\n" {
		t.Errorf("render --envrc = %q", stdout)
	}
}

func TestRenderCmd_Errors(t *testing.T) {
	if _, _, err := runCLI(t, "", "render", "cobol"); err == nil {
		t.Error("expected error for unknown language")
	}
	if _, _, err := runCLI(t, "", "render"); err == nil {
		t.Error("expected error for missing argument")
	}
}

func TestRootCmd_Version(t *testing.T) {
	stdout, _, err := runCLI(t, "", "--version")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.HasPrefix(stdout, "nixinit dev (commit: none") {
		t.Errorf("--version output = %q", stdout)
	}
}
