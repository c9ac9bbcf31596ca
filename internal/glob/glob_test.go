package glob

import "testing"

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		// Plain names match the last segment at any depth
		{"node_modules", "node_modules", true},
		{"node_modules", "web/node_modules", true},
		{"node_modules", "web/node_modules_old", false},
		{".git", "a/b/.git", true},
		{".*", "a/.cache", true},
		{"build*", "pkg/build-out", true},

		// Single directory patterns are anchored at the walk root
		{"icons/*", "icons/raw", true},
		{"icons/*", "other/raw", false},
		{"icons/raw", "x/icons/raw", false},

		// Double star - prefix only
		{"vendor/**", "vendor/a", true},
		{"vendor/**", "vendor/a/b", true},
		{"vendor/**", "vendorx/a", false},
		{"vendor/**", "other/a", false},

		// Double star - suffix only
		{"**/dist", "a/b/dist", true},
		{"**/dist", "dist", true},
		{"**/dist", "a/dister", false},
		{"**/tmp*", "x/tmp-1", true},

		// Double star - both prefix and suffix
		{"assets/**/raw*", "assets/v1/raw-src", true},
		{"assets/**/raw*", "assets/raw", true},
		{"assets/**/raw*", "other/raw", false},

		// Question mark
		{"out?", "out1", true},
		{"out?", "output", false},
	}

	for _, tc := range tests {
		t.Run(tc.pattern+"_"+tc.path, func(t *testing.T) {
			got, err := Match(tc.pattern, tc.path)
			if err != nil {
				t.Fatalf("Match(%q, %q) unexpected error: %v", tc.pattern, tc.path, err)
			}
			if got != tc.want {
				t.Errorf("Match(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
			}
		})
	}
}

func TestMatch_InvalidPattern(t *testing.T) {
	_, err := Match("[a-", "test")
	if err == nil {
		t.Error("Match with invalid pattern should return error")
	}
}

func TestAny(t *testing.T) {
	patterns := []string{".git", "node_modules"}

	if !Any(patterns, "site/node_modules") {
		t.Error("Any(node_modules) = false, want true")
	}
	if Any(patterns, "site/icons") {
		t.Error("Any(icons) = true, want false")
	}
	if Any([]string{"[a-"}, "a") {
		t.Error("Any(malformed) = true, want false")
	}
	if Any(nil, "anything") {
		t.Error("Any(nil) = true, want false")
	}
}

func TestCheck(t *testing.T) {
	if err := Check([]string{".git", "vendor/**"}); err != nil {
		t.Errorf("Check(valid) = %v, want nil", err)
	}
	if err := Check([]string{".git", "[a-"}); err == nil {
		t.Error("Check(malformed) = nil, want error")
	}
}
