package plugin

import "errors"

// ErrUnknownName is returned by resolvers that do not know a colour name.
var ErrUnknownName = errors.New("unknown colour name")

// Resolver is the interface resolver plugins must implement for go-plugin RPC.
type Resolver interface {
	// ResolveName maps a colour name to red, green, blue and alpha
	// components, each 0-255. Unknown names return ErrUnknownName.
	ResolveName(name string) ([]uint8, error)

	// GetMetadata returns plugin metadata.
	GetMetadata() PluginInfo
}
