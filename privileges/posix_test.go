//go:build linux || darwin

package privileges

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPrivilegesNotModeled(t *testing.T) {
	// False regardless of the actual uid, root included.
	elevated, err := CheckAdminPrivileges()
	require.NoError(t, err)
	assert.False(t, elevated)
}

func TestRequestElevationNotModeled(t *testing.T) {
	// Even an existing executable is never launched.
	accepted, err := RequestAdminPrivileges(os.Args[0])
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestPosixMethodDirect(t *testing.T) {
	method := &posixMethod{}

	elevated, err := method.CheckPrivileges()
	require.NoError(t, err)
	assert.False(t, elevated)

	accepted, err := method.RequestElevation("/usr/bin/true")
	require.NoError(t, err)
	assert.False(t, accepted)
}
