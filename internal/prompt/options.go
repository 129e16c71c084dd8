package prompt

import (
	"fmt"
	"strings"
)

// returns the selectable languages in display order
func Languages() []Language {
	return append([]Language(nil), languages...)
}

// returns the selectable depths in display order
func Depths() []Depth {
	return append([]Depth(nil), depths...)
}

func Actions() []Action {
	return append([]Action(nil), actions...)
}

// matches a language name case-insensitively against the known set
func ParseLanguage(s string) (Language, error) {
	for _, l := range languages {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownLanguage)
}

// matches a depth case-insensitively; empty input yields DefaultDepth
func ParseDepth(s string) (Depth, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultDepth, nil
	}

	for _, d := range depths {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownDepth)
}

func ParseAction(s string) (Action, error) {
	for _, a := range actions {
		if strings.EqualFold(strings.TrimSpace(s), string(a)) {
			return a, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownAction)
}

// reports whether the action sends a prompt to the model
func (a Action) CallsModel() bool {
	return a == GenerateDocs || a == GenerateDeps || a == RemoveHardcoding
}
