// Package plugin provides the public API for legible colour name resolver
// plugins. External plugins should import this package instead of internal
// packages.
package plugin

import (
	"github.com/hashicorp/go-plugin"
)

const (
	// ProtocolVersion defines the current plugin API version.
	// Format: MAJOR.MINOR.PATCH.
	// - Increment MAJOR for breaking changes (incompatible API changes).
	// - Increment MINOR for backward-compatible additions.
	// - Increment PATCH for backward-compatible bug fixes.
	ProtocolVersion = "0.1.0"

	// MinCompatibleVersion is the oldest protocol version this legible version can work with.
	MinCompatibleVersion = "0.1.0"

	// ResolverPluginName is the key resolvers are dispensed under.
	ResolverPluginName = "resolver"

	// InfoFlag makes a plugin print its PluginInfo as JSON and exit.
	InfoFlag = "--plugin-info"
)

// Handshake is the handshake configuration for go-plugin protocol.
// This ensures that plugins using go-plugin can only connect to compatible hosts.
//
// go-plugin's ProtocolVersion is a single uint that must match exactly, so
// only the major version is used here. Full MAJOR.MINOR.PATCH checking
// happens separately via the --plugin-info query and IsCompatible.
var Handshake = plugin.HandshakeConfig{
	ProtocolVersion:  uint(CurrentVersion().Major),
	MagicCookieKey:   "LEGIBLE_PLUGIN",
	MagicCookieValue: "legible_colour_resolver",
}

// PluginMap returns the plugin set a host uses to dispense a resolver.
func PluginMap() map[string]plugin.Plugin {
	return map[string]plugin.Plugin{
		ResolverPluginName: &ResolverRPC{},
	}
}
