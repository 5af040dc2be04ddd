package quote

import (
	"testing"

	shellquote "github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellSimple(t *testing.T) {
	assert.Equal(t, "'echo' 'hello'", Shell([]string{"echo", "hello"}))
}

func TestShellEmpty(t *testing.T) {
	assert.Equal(t, "", Shell(nil))
}

func TestShellSingleArg(t *testing.T) {
	assert.Equal(t, "'ls'", Shell([]string{"ls"}))
}

func TestShellRoundTrips(t *testing.T) {
	cases := [][]string{
		{"echo", "hello world"},
		{"echo", "$HOME"},
		{"echo", "it's"},
		{"ls", "*.go"},
		{"sh", "-c", "echo hello && ls -la"},
		{"echo", ""},
		{"echo", `a\b`},
		{"echo", "''"},
		{"printf", "%s\n"},
	}
	for _, argv := range cases {
		quoted := Shell(argv)
		got, err := shellquote.Split(quoted)
		require.NoError(t, err, "Split(%q)", quoted)
		assert.Equal(t, argv, got, "round-trip of %q", quoted)
	}
}

func TestShellEmbeddedSingleQuoteLiteral(t *testing.T) {
	got := Shell([]string{"echo", "it's"})
	assert.Equal(t, `'echo' 'it'"'"'s'`, got)
}

func TestWithDirNoDir(t *testing.T) {
	assert.Equal(t, "ls -la", WithDir("", "ls -la"))
}

func TestWithDirQuotesPath(t *testing.T) {
	got := WithDir("/w/app1/users/x", "'ls' '-la'")
	assert.Equal(t, "cd '/w/app1/users/x' && 'ls' '-la'", got)
}
