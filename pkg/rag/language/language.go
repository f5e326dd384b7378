package language

import (
	"errors"
	"fmt"
	"strings"
)

// Code is a supported reply language.
type Code string

const (
	English Code = "en"
	Thai    Code = "th"
)

var ErrUnsupported = errors.New("unsupported language")

// Thai script block.
const (
	thaiFirst = '\u0E00'
	thaiLast  = '\u0E7F'
)

// Detect returns Thai as soon as one rune from the Thai block appears, English otherwise.
func Detect(text string) Code {
	for _, r := range text {
		if r >= thaiFirst && r <= thaiLast {
			return Thai
		}
	}
	return English
}

func Parse(value string) (Code, error) {
	switch Code(strings.ToLower(strings.TrimSpace(value))) {
	case English:
		return English, nil
	case Thai:
		return Thai, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupported, value)
	}
}

func (c Code) String() string {
	return string(c)
}
