package expand

import (
	"testing"

	"github.com/zhubert/pfp/internal/errors"
)

func TestExpand(t *testing.T) {
	t.Setenv("PFP_TEST_HOME", "/home/alice")
	t.Setenv("PFP_TEST_SUB", "projects")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare variable", "$PFP_TEST_HOME", "/home/alice"},
		{"braced variable", "${PFP_TEST_HOME}", "/home/alice"},
		{"variable with suffix", "$PFP_TEST_HOME/code", "/home/alice/code"},
		{"braced mid-path", "/mnt/${PFP_TEST_SUB}/x", "/mnt/projects/x"},
		{"two variables", "$PFP_TEST_HOME/$PFP_TEST_SUB", "/home/alice/projects"},
		{"no variables", "/usr/local/bin", "/usr/local/bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.input)
			if err != nil {
				t.Fatalf("Expand(%q) returned error: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Expand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExpand_UndefinedVariable(t *testing.T) {
	_, err := Expand("$PFP_DEFINITELY_NOT_SET/code")
	if err == nil {
		t.Fatal("Expand should fail for an unset variable")
	}
	if !errors.Is(err, errors.KindNotFound) {
		t.Errorf("expected KindNotFound, got %v", errors.GetKind(err))
	}
}

func TestExpand_EmptyValueIsNotAnError(t *testing.T) {
	t.Setenv("PFP_TEST_EMPTY", "")

	got, err := Expand("/a/${PFP_TEST_EMPTY}/b")
	if err != nil {
		t.Fatalf("Expand returned error for set-but-empty variable: %v", err)
	}
	if got != "/a//b" {
		t.Errorf("Expand = %q, want %q", got, "/a//b")
	}
}

func TestAll(t *testing.T) {
	t.Setenv("PFP_TEST_ROOT", "/srv")

	paths, err := All([]string{"$PFP_TEST_ROOT/a", "$PFP_TEST_ROOT/b"})
	if err != nil {
		t.Fatalf("All returned error: %v", err)
	}
	if len(paths) != 2 || paths[0] != "/srv/a" || paths[1] != "/srv/b" {
		t.Errorf("All = %v, want [/srv/a /srv/b]", paths)
	}
}

func TestAll_PropagatesError(t *testing.T) {
	t.Setenv("PFP_TEST_ROOT", "/srv")

	_, err := All([]string{"$PFP_TEST_ROOT/a", "$PFP_NOT_SET_EITHER/b"})
	if err == nil {
		t.Fatal("All should fail when any path fails to expand")
	}
}
