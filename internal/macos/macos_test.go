package macos

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseProcessList(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain list", "Safari, Mail, Terminal\n", []string{"Safari", "Mail", "Terminal"}},
		{"braced list", "{Safari, Mail}", []string{"Safari", "Mail"}},
		{"quoted names", `"Safari", "Visual Studio Code"`, []string{"Safari", "Visual Studio Code"}},
		{"single name", "Finder\n", []string{"Finder"}},
		{"empty output", "\n", nil},
		{"empty braces", "{}", nil},
		{"name with comma-free spaces", "Activity Monitor, App Store", []string{"Activity Monitor", "App Store"}},
	}
	for _, tc := range cases {
		got := ParseProcessList(tc.raw)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, got)
			}
		}
	}
}

func mkdirAll(t *testing.T, parts ...string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Join(parts...), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
}

func TestInstalledAppsStripsPrefixAndSuffix(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, root, "Alacritty.app")
	mkdirAll(t, root, "Zed.app")
	mkdirAll(t, root, "Utilities", "Terminal.app")
	mkdirAll(t, root, "Utilities", "Console.app")
	mkdirAll(t, root, "NoBundlesHere")
	if err := os.WriteFile(filepath.Join(root, "README.txt"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	sys := System{AppsDir: root}
	got, err := sys.InstalledApps()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Alacritty", "Utilities/Console", "Utilities/Terminal", "Zed"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestInstalledAppsDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	mkdirAll(t, root, "Beta.app")
	mkdirAll(t, root, "Alpha.app")

	sys := System{AppsDir: root}
	first, err := sys.InstalledApps()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := sys.InstalledApps()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 2 || first[0] != "Alpha" || first[1] != "Beta" {
		t.Fatalf("expected lexical order, got %v", first)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("expected repeat scan to match, got %v then %v", first, second)
		}
	}
}

func TestInstalledAppsMissingRoot(t *testing.T) {
	sys := System{AppsDir: filepath.Join(t.TempDir(), "definitely-absent")}
	if _, err := sys.InstalledApps(); err == nil {
		t.Fatalf("expected error for missing root")
	}
}

func TestQuitRefusedErrorMessage(t *testing.T) {
	err := &QuitRefusedError{Name: "Ghost", Detail: "application not found"}
	if got := err.Error(); got != "quit request for Ghost refused: application not found" {
		t.Fatalf("unexpected message %q", got)
	}
	bare := &QuitRefusedError{Name: "Ghost"}
	if got := bare.Error(); got != "quit request for Ghost refused" {
		t.Fatalf("unexpected message %q", got)
	}
}
