// Package locale holds the per-shell language state and the writing
// direction derived from it.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Direction is a layout writing direction.
type Direction string

const (
	LeftToRight Direction = "ltr"
	RightToLeft Direction = "rtl"
)

// Supported lists the languages the client ships chrome copy for,
// default first. The shell cycles through these in order.
var Supported = []language.Tag{
	language.English,
	language.Hebrew,
	language.Arabic,
}

// rtlBases maps base language codes that render right-to-left. Any code
// whose base is not in this table renders left-to-right. Direction is
// always derived from the language, never stored independently.
var rtlBases = map[string]bool{
	"he":  true,
	"iw":  true, // legacy Hebrew code, canonicalized to "he" by x/text
	"ar":  true,
	"fa":  true,
	"ur":  true,
	"yi":  true,
	"ps":  true,
	"sd":  true,
	"dv":  true,
	"ckb": true,
}

// Parse returns the tag for code, falling back to the default supported
// language when code is empty or malformed.
func Parse(code string) language.Tag {
	code = strings.TrimSpace(code)
	if code == "" {
		return Supported[0]
	}
	tag, err := language.Parse(code)
	if err != nil {
		return Supported[0]
	}
	return tag
}

// State is the locale context owned by one shell instance. It is mutated
// only through SetLanguage on the UI goroutine.
type State struct {
	tag language.Tag
	rtl bool
}

// New returns a State for code, falling back to the default supported
// language when code is empty or unknown.
func New(code string) *State {
	s := &State{}
	s.SetLanguage(code)
	return s
}

// SetLanguage switches the active language and recomputes direction.
func (s *State) SetLanguage(code string) {
	s.tag = Parse(code)
	base, _ := s.tag.Base()
	s.rtl = rtlBases[base.String()]
}

// Language returns the active language code.
func (s *State) Language() string {
	return s.tag.String()
}

// Tag returns the active language tag.
func (s *State) Tag() language.Tag {
	return s.tag
}

// IsRightToLeft reports whether the active language renders right-to-left.
func (s *State) IsRightToLeft() bool {
	return s.rtl
}

// Direction returns the writing direction for the active language.
func (s *State) Direction() Direction {
	if s.rtl {
		return RightToLeft
	}
	return LeftToRight
}

// Cycle advances to the next supported language and returns its code.
// Languages outside the supported set cycle back to the default.
func (s *State) Cycle() string {
	idx := -1
	for i, tag := range Supported {
		if tag == s.tag {
			idx = i
			break
		}
	}
	next := Supported[(idx+1)%len(Supported)]
	s.SetLanguage(next.String())
	return s.Language()
}
