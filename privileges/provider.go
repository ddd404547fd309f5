package privileges

import (
	"runtime"

	"github.com/tianyu365/CursorPool-Client/log"
)

// Method performs the privilege operations for one platform.
type Method interface {
	// CheckPrivileges reports whether the current process is elevated.
	CheckPrivileges() (bool, error)
	// RequestElevation asks the OS to launch the executable at exePath with
	// elevated privileges and reports whether the request was accepted.
	RequestElevation(exePath string) (bool, error)
}

// Factory is a function that returns a Method, or nil when the method it
// builds is not available.
type Factory func() Method

// Provider is a collection of method factories.
type Provider struct {
	log.LoggerInjectable
	builders []Factory
}

// NewProvider returns a new provider with the given factories.
func NewProvider(factories ...Factory) *Provider {
	return &Provider{builders: factories}
}

// Register adds a factory to the provider.
func (p *Provider) Register(b Factory) {
	p.builders = append(p.builders, b)
}

// Get returns the method from the first factory that yields one.
func (p *Provider) Get() (Method, error) {
	for _, b := range p.builders {
		if method := b(); method != nil {
			p.InjectLoggerTo(method, log.KeyOS, runtime.GOOS)
			return method, nil
		}
	}
	return nil, ErrNoMethod
}
