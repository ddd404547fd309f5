//go:build !windows && !linux && !darwin

package privileges

import (
	"runtime"
)

func registerPlatformMethod(p *Provider) {
	p.Register(func() Method { return &unsupportedMethod{goos: runtime.GOOS} })
}

// unsupportedMethod fails both operations with ErrUnsupportedPlatform so that
// Provider.Get stays infallible and the error surfaces per operation.
type unsupportedMethod struct {
	goos string
}

func (m *unsupportedMethod) CheckPrivileges() (bool, error) {
	return false, ErrUnsupportedPlatform.Wrapf("%s", m.goos)
}

func (m *unsupportedMethod) RequestElevation(_ string) (bool, error) {
	return false, ErrUnsupportedPlatform.Wrapf("%s", m.goos)
}
