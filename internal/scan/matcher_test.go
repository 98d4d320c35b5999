package scan

import (
	"testing"

	"github.com/zhubert/pfp/internal/errors"
)

func TestMatcher_Exact(t *testing.T) {
	m, err := NewMatcher([]string{".git", "Cargo.toml"}, nil)
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}

	tests := []struct {
		name     string
		expected bool
	}{
		{".git", true},
		{"Cargo.toml", true},
		{"cargo.toml", false},
		{".gitignore", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := m.Match(tt.name); got != tt.expected {
			t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestMatcher_Pattern(t *testing.T) {
	m, err := NewMatcher(nil, []string{`\.csproj$`, `^build\.gradle`})
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}

	tests := []struct {
		name     string
		expected bool
	}{
		{"app.csproj", true},
		{"build.gradle", true},
		{"build.gradle.kts", true},
		{"app.csproj.bak", false},
		{"Makefile", false},
	}
	for _, tt := range tests {
		if got := m.Match(tt.name); got != tt.expected {
			t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.expected)
		}
	}
}

func TestMatcher_ExactBeforePattern(t *testing.T) {
	m, err := NewMatcher([]string{"go.mod"}, []string{`^nomatch$`})
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	if !m.Match("go.mod") {
		t.Error("exact name should match when patterns do not")
	}
}

func TestMatcher_Wildcard(t *testing.T) {
	m, err := NewMatcher([]string{Wildcard}, nil)
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	for _, name := range []string{"anything", ".hidden", ""} {
		if !m.Match(name) {
			t.Errorf("wildcard matcher should match %q", name)
		}
	}
}

func TestMatcher_EmptyMatchesNothing(t *testing.T) {
	m, err := NewMatcher(nil, nil)
	if err != nil {
		t.Fatalf("NewMatcher returned error: %v", err)
	}
	if m.Match("anything") {
		t.Error("empty matcher should match nothing")
	}
	if !m.Empty() {
		t.Error("empty matcher should report Empty")
	}
}

func TestMatcher_InvalidPattern(t *testing.T) {
	_, err := NewMatcher(nil, []string{`(unclosed`})
	if err == nil {
		t.Fatal("NewMatcher should fail on an invalid pattern")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("expected KindConfig, got %v", errors.GetKind(err))
	}
}

func TestMatcher_InvalidPatternAmongValid(t *testing.T) {
	_, err := NewMatcher(nil, []string{`^ok$`, `[bad`})
	if err == nil {
		t.Fatal("NewMatcher should fail when any pattern is invalid")
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
		wantErr  bool
	}{
		{"", DirectoryMarker, false},
		{"markers", DirectoryMarker, false},
		{"files", FileListing, false},
		{"directories", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.expected {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}
