package carnitrack

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, dbPath string, args ...string) string {
	t.Helper()
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"--db", dbPath}, args...))
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return buf.String()
}

func TestRootHelp(t *testing.T) {
	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"--help"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("execute root help: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatalf("expected help output")
	}
}

func TestInitCommandIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carnitrack.db")
	for i := 0; i < 2; i++ {
		buf := &bytes.Buffer{}
		rootCmd.SetOut(buf)
		rootCmd.SetErr(buf)
		rootCmd.SetArgs([]string{"--db", path, "init"})
		if err := rootCmd.Execute(); err != nil {
			t.Fatalf("init run %d failed: %v", i+1, err)
		}
	}
}

func TestLogAndTodayWorkflow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carnitrack.db")

	runCommand(t, path, "init")
	runCommand(t, path, "targets", "set", "--weight", "100", "--calories", "2200", "--carbs", "20")
	runCommand(t, path, "log", "food", "Ribeye", "--grams", "250")
	runCommand(t, path, "log", "drink", "Beer", "--amount", "1", "--unit", "schooner")

	out := runCommand(t, path, "today")
	if !strings.Contains(out, "2200") {
		t.Fatalf("today output should show the calorie target:\n%s", out)
	}

	out = runCommand(t, path, "log", "show")
	if !strings.Contains(out, "Ribeye") || !strings.Contains(out, "Beer") {
		t.Fatalf("log show should list both rows:\n%s", out)
	}
}

func TestFoodCatalogCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carnitrack.db")

	runCommand(t, path, "food", "add", "Lamb chops", "--kcal", "294", "--protein", "25", "--fat", "21")
	out := runCommand(t, path, "food", "list")
	if !strings.Contains(out, "Lamb chops") {
		t.Fatalf("food list should include the new entry:\n%s", out)
	}
}
