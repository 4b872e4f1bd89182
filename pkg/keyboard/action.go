package keyboard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const separator = ":"

// ErrMalformedAction is returned by Parse for tokens whose arguments are not integers.
var ErrMalformedAction = errors.New("keyboard: malformed action token")

// Action is a parsed action token of the form "<verb>[:<id>[:<id2>]]".
type Action struct {
	Verb string
	Args []int64
}

// Format builds an action token from a verb and integer arguments.
func Format(verb string, ids ...int64) string {
	if len(ids) == 0 {
		return verb
	}
	var b strings.Builder
	b.WriteString(verb)
	for _, id := range ids {
		b.WriteString(separator)
		b.WriteString(strconv.FormatInt(id, 10))
	}
	return b.String()
}

// Parse splits a token into its verb and integer arguments.
func Parse(token string) (Action, error) {
	parts := strings.Split(token, separator)
	if parts[0] == "" {
		return Action{}, fmt.Errorf("%w: %q", ErrMalformedAction, token)
	}
	a := Action{Verb: parts[0]}
	for _, p := range parts[1:] {
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return Action{}, fmt.Errorf("%w: %q", ErrMalformedAction, token)
		}
		a.Args = append(a.Args, id)
	}
	return a, nil
}
