package compile

import (
	"regexp"
	"strconv"
	"strings"
)

// placeholderPattern matches a percent sign followed by one or more digits.
// Anything else that merely looks like a placeholder stays literal.
var placeholderPattern = regexp.MustCompile(`%\d+`)

// token is one message fragment: literal label text or a %N placeholder
// carrying its 1-based index. %0 tokenizes as a placeholder and fails
// resolution, matching the out-of-range contract.
type token struct {
	index       int
	literal     string
	placeholder bool
}

func literalToken(text string) token {
	return token{literal: text}
}

func placeholderToken(index int) token {
	return token{index: index, placeholder: true}
}

// tokenize splits a message into literal and placeholder tokens in message
// order. Literal fragments unescape %% to %, are trimmed of surrounding
// whitespace, and are dropped entirely when empty after trimming. Tokenizing
// never fails; a malformed placeholder is just literal text.
func tokenize(message string) []token {
	var tokens []token
	pos := 0
	for _, loc := range placeholderPattern.FindAllStringIndex(message, -1) {
		if lit, ok := cleanLiteral(message[pos:loc[0]]); ok {
			tokens = append(tokens, literalToken(lit))
		}
		index, err := strconv.Atoi(message[loc[0]+1 : loc[1]])
		if err != nil {
			// Unreachable: the pattern only matches digits.
			continue
		}
		tokens = append(tokens, placeholderToken(index))
		pos = loc[1]
	}
	if lit, ok := cleanLiteral(message[pos:]); ok {
		tokens = append(tokens, literalToken(lit))
	}
	return tokens
}

func cleanLiteral(raw string) (string, bool) {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "%%", "%"))
	if text == "" {
		return "", false
	}
	return text, true
}
