package privileges

import (
	"github.com/tianyu365/CursorPool-Client/errdef"
)

var (
	// ErrUnsupportedPlatform is returned when the compile target is outside the
	// three handled operating systems. The wrapped message names the running OS.
	ErrUnsupportedPlatform = errdef.New("unsupported operating system")
	// ErrNoMethod is returned by Provider.Get when no method is registered.
	ErrNoMethod = errdef.New("no privilege method registered")
)
