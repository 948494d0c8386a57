package valueprovider

import "github.com/bsq-ports/tracks-rs/internal/baseprovider"

// BaseProvider owns a channel name and returns that channel's float
// view at evaluation time.
type BaseProvider struct {
	Channel string
}

// NewBaseProvider builds a provider bound to a single channel name.
func NewBaseProvider(channel string) *BaseProvider { return &BaseProvider{Channel: channel} }

func (b *BaseProvider) Values(ctx *baseprovider.Context) ([]float32, error) {
	return ctx.Slice(b.Channel)
}

// HasBaseProvider is always true: this variant's output is the
// channel's live value and can change every tick without any Update
// call.
func (b *BaseProvider) HasBaseProvider() bool { return true }
