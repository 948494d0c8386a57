package valueprovider

import "github.com/bsq-ports/tracks-rs/internal/baseprovider"

// HostExtensionFunc is a host-supplied callback returning a float
// view plus whether that view is live (can change between ticks).
type HostExtensionFunc func() ([]float32, bool)

// HostExtension adapts a host callback into a Provider.
type HostExtension struct {
	Fn HostExtensionFunc
}

// NewHostExtension wraps fn, which reports its own HasBaseProvider
// via the callback's bool return.
func NewHostExtension(fn HostExtensionFunc) *HostExtension { return &HostExtension{Fn: fn} }

func (h *HostExtension) Values(_ *baseprovider.Context) ([]float32, error) {
	values, _ := h.Fn()
	return values, nil
}

func (h *HostExtension) HasBaseProvider() bool {
	_, dynamic := h.Fn()
	return dynamic
}
