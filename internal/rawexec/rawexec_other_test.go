//go:build !linux && !darwin

package rawexec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRawFunctionsFailClosedOnUnsupportedPlatform(t *testing.T) {
	assert.ErrorIs(t, RawExecve("/bin/ls", nil, nil), ErrUnsupportedPlatform)
	assert.ErrorIs(t, RawExecv("/bin/ls", nil), ErrUnsupportedPlatform)
	assert.ErrorIs(t, RawExecvp("ls", nil), ErrUnsupportedPlatform)
	assert.ErrorIs(t, RawChdir("/tmp"), ErrUnsupportedPlatform)

	status, err := RawSystem("true")
	assert.Equal(t, -1, status)
	assert.ErrorIs(t, err, ErrUnsupportedPlatform)

	assert.NotPanics(t, func() { SetErrno(ErrUnsupportedPlatform) })
}
