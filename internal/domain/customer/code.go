package customer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmptyBranch = errors.New("branch is required")
	ErrBadCode     = errors.New("malformed customer code")
)

// Code is the branch-prefixed customer identifier, e.g. "CAI-01" for the
// first customer registered at the Cairo branch.
type Code string

func (c Code) String() string {
	return string(c)
}

// Prefix derives the code prefix from a branch name: first three letters,
// upper-cased.
func Prefix(branch string) (string, error) {
	branch = strings.TrimSpace(branch)
	if branch == "" {
		return "", ErrEmptyBranch
	}
	if len(branch) < 3 {
		return strings.ToUpper(branch), nil
	}
	return strings.ToUpper(branch[:3]), nil
}

// NextCode produces the code following lastCode for the given prefix. The
// numeric suffix is zero-padded to at least two digits.
func NextCode(prefix string, lastCode string) (Code, error) {
	if lastCode == "" {
		return Code(prefix + "-01"), nil
	}

	parts := strings.SplitN(lastCode, "-", 2)
	if len(parts) != 2 {
		return "", ErrBadCode
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", ErrBadCode
	}
	return Code(fmt.Sprintf("%s-%02d", prefix, n+1)), nil
}
