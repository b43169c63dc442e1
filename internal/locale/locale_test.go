package locale

import "testing"

func TestResolveGroupKeyRoundTrip(t *testing.T) {
	// Every localized display string, in every locale, resolves back to
	// its canonical key.
	for _, key := range GroupKeys {
		for _, loc := range Supported {
			display := GroupDisplayName(key, loc)
			got, ok := ResolveGroupKey(display)
			if !ok || got != key {
				t.Errorf("ResolveGroupKey(%q) [%s] = %q, %v; want %q", display, loc, got, ok, key)
			}
		}
		// The canonical key itself resolves too, case-insensitively.
		if got, ok := ResolveGroupKey("  " + key + " "); !ok || got != key {
			t.Errorf("ResolveGroupKey(%q) = %q, %v", key, got, ok)
		}
	}
}

func TestResolveGroupKeyUnmatched(t *testing.T) {
	raw := "Sea Scouts"
	got, ok := ResolveGroupKey(raw)
	if ok {
		t.Errorf("expected no match for %q", raw)
	}
	if got != raw {
		t.Errorf("unmatched value must be preserved: got %q, want %q", got, raw)
	}
}

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"paid", "paid"},
		{"PAID", "paid"},
		{"مدفوع", "paid"},
		{"due", "due"},
		{" مستحق ", "due"},
		{"whatever", "due"},
		{"", "due"},
	}
	for _, tt := range tests {
		if got := NormalizeStatus(tt.in); got != tt.want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
	}{
		{"ar", Arabic},
		{"en", English},
		{"en-US", English},
		{"EN", English},
		{"ar-SD,ar;q=0.9", Arabic},
		{"fr", Arabic},
		{"", Arabic},
	}
	for _, tt := range tests {
		if got := Parse(tt.in); got != tt.want {
			t.Errorf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
