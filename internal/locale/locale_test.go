package locale

import "testing"

func TestRightToLeftTable(t *testing.T) {
	rtl := []string{"he", "iw", "ar", "fa", "ur", "yi", "ps", "sd", "dv", "ckb", "he-IL", "ar-EG"}
	for _, code := range rtl {
		t.Run(code, func(t *testing.T) {
			s := New(code)
			if !s.IsRightToLeft() {
				t.Errorf("IsRightToLeft(%q) = false, want true", code)
			}
			if s.Direction() != RightToLeft {
				t.Errorf("Direction(%q) = %q, want %q", code, s.Direction(), RightToLeft)
			}
		})
	}

	ltr := []string{"en", "en-US", "fr", "de", "ja", "ru", "pt-BR"}
	for _, code := range ltr {
		t.Run(code, func(t *testing.T) {
			s := New(code)
			if s.IsRightToLeft() {
				t.Errorf("IsRightToLeft(%q) = true, want false", code)
			}
			if s.Direction() != LeftToRight {
				t.Errorf("Direction(%q) = %q, want %q", code, s.Direction(), LeftToRight)
			}
		})
	}
}

func TestUnknownCodesFallBackToDefault(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"garbage", "not a language"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.code)
			if got := s.Language(); got != "en" {
				t.Errorf("Language(%q) = %q, want %q", tt.code, got, "en")
			}
			if s.IsRightToLeft() {
				t.Errorf("fallback language should render left-to-right")
			}
		})
	}
}

func TestSetLanguageRecomputesDirection(t *testing.T) {
	s := New("en")
	if s.IsRightToLeft() {
		t.Fatal("en should be ltr")
	}
	s.SetLanguage("he")
	if !s.IsRightToLeft() {
		t.Fatal("he should be rtl after SetLanguage")
	}
	s.SetLanguage("en")
	if s.IsRightToLeft() {
		t.Fatal("direction must follow the language back to ltr")
	}
}

func TestLegacyHebrewCodeCanonicalizes(t *testing.T) {
	s := New("iw")
	if got := s.Language(); got != "he" {
		t.Errorf("Language(iw) = %q, want %q", got, "he")
	}
	if !s.IsRightToLeft() {
		t.Error("iw should render right-to-left")
	}
}

func TestCycleWalksSupportedLanguages(t *testing.T) {
	s := New("en")
	want := []string{"he", "ar", "en", "he"}
	for i, w := range want {
		if got := s.Cycle(); got != w {
			t.Fatalf("Cycle() step %d = %q, want %q", i, got, w)
		}
	}
}

func TestCycleFromUnsupportedLanguageReturnsDefault(t *testing.T) {
	s := New("fr")
	if got := s.Cycle(); got != "en" {
		t.Fatalf("Cycle() from fr = %q, want %q", got, "en")
	}
}
