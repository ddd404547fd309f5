//go:build windows

package privileges

import (
	"golang.org/x/sys/windows"

	"github.com/tianyu365/CursorPool-Client/log"
)

// SW_SHOWNORMAL, the launched window is activated and displayed.
const showNormal = 1

func registerPlatformMethod(p *Provider) {
	p.Register(func() Method { return &windowsMethod{} })
}

// windowsMethod reads the elevation state from the process token and requests
// elevation through the shell "runas" verb.
type windowsMethod struct {
	log.LoggerInjectable
}

func (m *windowsMethod) CheckPrivileges() (bool, error) {
	elevated := windows.GetCurrentProcessToken().IsElevated()
	m.Log().Debug("queried process token elevation", log.KeyElevated, elevated)
	return elevated, nil
}

func (m *windowsMethod) RequestElevation(exePath string) (bool, error) {
	verb, err := windows.UTF16PtrFromString("runas")
	if err != nil {
		return false, nil
	}
	file, err := windows.UTF16PtrFromString(exePath)
	if err != nil {
		m.Log().Debug("executable path not convertible", log.KeyExecutable, exePath, log.ErrorAttr(err))
		return false, nil
	}
	// ShellExecuteW reports failure with a result code of 32 or less. The
	// finer grained codes (consent declined, file not found) all collapse
	// into false.
	if err := windows.ShellExecute(0, verb, file, nil, nil, showNormal); err != nil {
		m.Log().Debug("elevation request not accepted", log.KeyExecutable, exePath, log.ErrorAttr(err))
		return false, nil
	}
	m.Log().Debug("elevation request accepted", log.KeyExecutable, exePath)
	return true, nil
}
