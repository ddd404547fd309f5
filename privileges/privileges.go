// Package privileges answers whether the current process is running with
// administrative rights and can ask the operating system to relaunch an
// executable with an elevation request.
//
// Windows is the only platform where both operations are modeled: the check
// reads the elevation state of the process token and the request goes through
// the shell's "runas" verb, which raises the UAC consent prompt. On Linux and
// macOS both operations report false without an error; elevation status is
// deliberately not modeled there. Any other target fails with
// ErrUnsupportedPlatform.
package privileges

import (
	"github.com/tianyu365/CursorPool-Client/log"
)

// DefaultProvider is the provider backing the package level functions.
var DefaultProvider = NewProvider()

func init() {
	registerPlatformMethod(DefaultProvider)
}

// SetLogger sets the logger handed to methods obtained from DefaultProvider.
// The default is to log nothing.
func SetLogger(logger log.Logger) {
	DefaultProvider.SetLogger(logger)
}

// CheckAdminPrivileges reports whether the current process has elevated
// privileges. On Linux and macOS the answer is always false, a real root
// process included. Repeated calls yield the same answer for as long as the
// process privileges stay unchanged.
func CheckAdminPrivileges() (bool, error) {
	method, err := DefaultProvider.Get()
	if err != nil {
		return false, err
	}
	return method.CheckPrivileges()
}

// RequestAdminPrivileges asks the operating system to launch the executable
// at exePath with elevated privileges, with no arguments and in a visible
// window. It returns true when the OS accepted the launch request and false
// for any other outcome, a declined consent prompt and a nonexistent
// executable included. It does not wait for the prompt to be answered or for
// the launched process to exit.
func RequestAdminPrivileges(exePath string) (bool, error) {
	method, err := DefaultProvider.Get()
	if err != nil {
		return false, err
	}
	return method.RequestElevation(exePath)
}
