//go:build linux || darwin

package privileges

import (
	"github.com/tianyu365/CursorPool-Client/log"
)

func registerPlatformMethod(p *Provider) {
	p.Register(func() Method { return &posixMethod{} })
}

// posixMethod reports false for both operations. Elevation status is not
// modeled on Linux and macOS, so even a root process answers false and
// elevation requests are never attempted.
type posixMethod struct {
	log.LoggerInjectable
}

func (m *posixMethod) CheckPrivileges() (bool, error) {
	return false, nil
}

func (m *posixMethod) RequestElevation(exePath string) (bool, error) {
	m.Log().Debug("elevation not modeled on this platform", log.KeyExecutable, exePath)
	return false, nil
}
