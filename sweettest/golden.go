package sweettest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/renameio/v2"
)

// UpdateEnv is the environment variable that makes Golden rewrite its
// files instead of comparing.
const UpdateEnv = "UPDATE_GOLDEN"

// Golden compares trace with testdata/<name>.golden, one call per line.
// Run the test with UPDATE_GOLDEN=1 to rewrite the file.
func Golden(t testing.TB, name string, trace []string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")
	got := strings.Join(trace, "\n") + "\n"

	if os.Getenv(UpdateEnv) == "1" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("create golden dir: %v", err)
		}
		if err := renameio.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("write golden %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden %s: %v (set UPDATE_GOLDEN=1 to create it)", path, err)
	}
	if diff := cmp.Diff(lines(string(want)), lines(got)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", path, diff)
	}
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
