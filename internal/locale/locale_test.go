package locale

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Locale
		wantErr bool
	}{
		{in: "zh_CN", want: "zh_CN"},
		{in: "  ja_JP ", want: "ja_JP"},
		{in: "zh_TW", want: "zh_TW"},
		{in: "zh-CN", wantErr: true},
		{in: "fr_FR", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("Parse(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseErrorListsChoices(t *testing.T) {
	_, err := Parse("xx_XX")
	if err == nil || !strings.Contains(err.Error(), "ko_KR") {
		t.Fatalf("expected error listing supported locales, got %v", err)
	}
}

func TestFontSuffix(t *testing.T) {
	cases := map[Locale]string{
		"zh_CN": "CN",
		"zh_TW": "TW",
		"en_US": "US",
		"ja_JP": "JP",
		"ko_KR": "KR",
	}
	for loc, want := range cases {
		if got := loc.FontSuffix(); got != want {
			t.Fatalf("%s.FontSuffix() = %q, want %q", loc, got, want)
		}
	}
}

func TestTagAndDisplayName(t *testing.T) {
	for _, loc := range Supported() {
		tag, err := loc.Tag()
		if err != nil {
			t.Fatalf("Tag(%s): %v", loc, err)
		}
		if tag.String() != strings.ReplaceAll(string(loc), "_", "-") {
			t.Fatalf("Tag(%s) = %s", loc, tag)
		}
		if loc.DisplayName() == "" {
			t.Fatalf("empty display name for %s", loc)
		}
	}
	if got := Locale("ja_JP").DisplayName(); !strings.Contains(got, "Japanese") {
		t.Fatalf("unexpected display name for ja_JP: %q", got)
	}
}

func TestSupportedIsSorted(t *testing.T) {
	got := Names()
	want := []string{"en_US", "ja_JP", "ko_KR", "zh_CN", "zh_TW"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
}
