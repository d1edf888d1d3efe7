package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidTheme = errors.New("invalid theme")

type Theme uint8

const (
	Light Theme = iota
	Dark
)

func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%q: %w", s, ErrInvalidTheme)
	}
}
