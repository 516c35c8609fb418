//go:build unit

package customer_test

import (
	"testing"

	"comma-backend/internal/domain/customer"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefix(t *testing.T) {
	cases := []struct {
		name     string
		branch   string
		expected string
		errIs    error
	}{
		{name: "three letter prefix upper-cased", branch: "Cairo", expected: "CAI"},
		{name: "already upper", branch: "ALEXANDRIA", expected: "ALE"},
		{name: "short branch name kept whole", branch: "Ab", expected: "AB"},
		{name: "surrounding whitespace trimmed", branch: "  giza  ", expected: "GIZ"},
		{name: "empty branch", branch: "", errIs: customer.ErrEmptyBranch},
		{name: "whitespace only branch", branch: "   ", errIs: customer.ErrEmptyBranch},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			prefix, err := customer.Prefix(c.branch)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, prefix)
		})
	}
}

func TestNextCode(t *testing.T) {
	cases := []struct {
		name     string
		prefix   string
		lastCode string
		expected customer.Code
		errIs    error
	}{
		{name: "first customer for a branch", prefix: "CAI", lastCode: "", expected: "CAI-01"},
		{name: "increments the suffix", prefix: "CAI", lastCode: "CAI-01", expected: "CAI-02"},
		{name: "crosses into double digits", prefix: "CAI", lastCode: "CAI-09", expected: "CAI-10"},
		{name: "grows past the padding", prefix: "CAI", lastCode: "CAI-99", expected: "CAI-100"},
		{name: "missing separator", prefix: "CAI", lastCode: "CAI01", errIs: customer.ErrBadCode},
		{name: "non-numeric suffix", prefix: "CAI", lastCode: "CAI-XX", errIs: customer.ErrBadCode},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, err := customer.NextCode(c.prefix, c.lastCode)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, code)
		})
	}
}
