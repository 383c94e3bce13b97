package shell

import (
	"fmt"
	"strings"
)

type tokens struct {
	tokens []string
	curr   int
}

func (tk tokens) remainder() string {
	return strings.Join(tk.tokens[tk.curr:], " ")
}

func (tk tokens) remaining() int {
	return len(tk.tokens) - tk.curr
}

func (tk *tokens) get() (string, bool) {
	if tk.curr >= len(tk.tokens) {
		return "", false
	}
	tk.curr++
	return tk.tokens[tk.curr-1], true
}

func tokeniseInput(input string) *tokens {
	tk := new(tokens)

	// divide user input into tokens
	tk.tokens = strings.Fields(input)

	// normalise hex notation
	for i := range tk.tokens {
		if tk.tokens[i][0] == '$' {
			tk.tokens[i] = fmt.Sprintf("0x%s", tk.tokens[i][1:])
		}
	}

	return tk
}
