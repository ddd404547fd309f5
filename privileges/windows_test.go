//go:build windows

package privileges

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/windows"
)

func TestCheckPrivilegesMatchesToken(t *testing.T) {
	elevated, err := CheckAdminPrivileges()
	require.NoError(t, err)
	assert.Equal(t, windows.GetCurrentProcessToken().IsElevated(), elevated)
}

func TestRequestElevationMissingFile(t *testing.T) {
	// ShellExecuteW fails with ERROR_FILE_NOT_FOUND before any consent
	// prompt is raised, and the failure collapses into false.
	method := &windowsMethod{}
	accepted, err := method.RequestElevation(filepath.Join(t.TempDir(), "missing.exe"))
	require.NoError(t, err)
	assert.False(t, accepted)
}

func TestRequestElevationPathWithNUL(t *testing.T) {
	method := &windowsMethod{}
	accepted, err := method.RequestElevation("bad\x00path.exe")
	require.NoError(t, err)
	assert.False(t, accepted)
}
