package compile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name    string
		message string
		expect  []token
	}{
		{
			name:    "literal only",
			message: "Hello",
			expect:  []token{literalToken("Hello")},
		},
		{
			name:    "placeholders with literal between",
			message: "%1 plus %2",
			expect: []token{
				placeholderToken(1),
				literalToken("plus"),
				placeholderToken(2),
			},
		},
		{
			name:    "leading and trailing literals trimmed",
			message: "  repeat %1 times  ",
			expect: []token{
				literalToken("repeat"),
				placeholderToken(1),
				literalToken("times"),
			},
		},
		{
			name:    "escaped percent unescapes inside literal",
			message: "say %% %1",
			expect: []token{
				literalToken("say %"),
				placeholderToken(1),
			},
		},
		{
			name:    "malformed placeholder stays literal",
			message: "%x %1",
			expect: []token{
				literalToken("%x"),
				placeholderToken(1),
			},
		},
		{
			name:    "zero index still tokenizes as placeholder",
			message: "%0",
			expect:  []token{placeholderToken(0)},
		},
		{
			name:    "multi digit index",
			message: "%12",
			expect:  []token{placeholderToken(12)},
		},
		{
			name:    "whitespace only literal dropped",
			message: "%1   %2",
			expect: []token{
				placeholderToken(1),
				placeholderToken(2),
			},
		},
		{
			name:    "empty message",
			message: "",
			expect:  nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tokenize(tc.message)
			if diff := cmp.Diff(tc.expect, got, cmp.AllowUnexported(token{})); diff != "" {
				t.Fatalf("tokenize(%q) mismatch (-want +got):\n%s", tc.message, diff)
			}
		})
	}
}
