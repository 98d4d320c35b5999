package tmux

import "testing"

func TestDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"two deep", "/Users/alice/projects/my-app", "proj/my-app"},
		{"short parent kept whole", "/srv/www", "srv/www"},
		{"trailing slash", "/Users/alice/projects/my-app/", "proj/my-app"},
		{"exactly four cells", "/home/code/app", "code/app"},
		{"dotted project", "/home/alice/dot.files", "alic/dot.files"},
		{"single segment passes through", "/my-app", "/my-app"},
		{"relative single segment", "my-app", "my-app"},
		{"relative pair passes through", "a/b", "a/b"},
		{"relative triple", "a/b/c", "b/c"},
		{"wide runes truncate by cell width", "/x/日本語テスト/app", "日本/app"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayName(tt.path); got != tt.expected {
				t.Errorf("DisplayName(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestSessionName(t *testing.T) {
	tests := []struct {
		display  string
		expected string
	}{
		{"proj/my-app", "proj/my-app"},
		{"alic/dot.files", "alic/dotfiles"},
		{"a.b.c", "abc"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SessionName(tt.display); got != tt.expected {
			t.Errorf("SessionName(%q) = %q, want %q", tt.display, got, tt.expected)
		}
	}
}
