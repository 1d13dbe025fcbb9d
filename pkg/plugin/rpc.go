package plugin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/rpc"
	"os"

	"github.com/hashicorp/go-plugin"
)

// ResolverRPC implements the go-plugin Plugin interface for resolver plugins.
type ResolverRPC struct {
	plugin.Plugin
	Impl Resolver
}

// Server returns an RPC server for this plugin.
func (p *ResolverRPC) Server(*plugin.MuxBroker) (any, error) {
	return &ResolverRPCServer{Impl: p.Impl}, nil
}

// Client returns an RPC client for this plugin.
func (p *ResolverRPC) Client(_ *plugin.MuxBroker, c *rpc.Client) (any, error) {
	return &ResolverRPCClient{client: c}, nil
}

// ResolverRPCServer is the RPC server implementation for resolver plugins.
type ResolverRPCServer struct {
	Impl Resolver
}

// ResolveName implements the RPC method for name lookups. Unknown names are
// reported through the response rather than as an RPC error.
func (s *ResolverRPCServer) ResolveName(req ResolveRequest, resp *ResolveResponse) error {
	components, err := s.Impl.ResolveName(req.Name)
	if errors.Is(err, ErrUnknownName) {
		*resp = ResolveResponse{}
		return nil
	}
	if err != nil {
		return err
	}

	*resp = ResolveResponse{Components: components, Found: true}
	return nil
}

// GetMetadata implements the RPC method for fetching plugin metadata.
func (s *ResolverRPCServer) GetMetadata(_ any, resp *PluginInfo) error {
	*resp = s.Impl.GetMetadata()
	return nil
}

// ResolverRPCClient is the RPC client implementation for resolver plugins.
type ResolverRPCClient struct {
	client *rpc.Client
}

// ResolveName calls the remote ResolveName method.
func (c *ResolverRPCClient) ResolveName(name string) ([]uint8, error) {
	var resp ResolveResponse
	if err := c.client.Call("Plugin.ResolveName", ResolveRequest{Name: name}, &resp); err != nil {
		return nil, err
	}
	if !resp.Found {
		return nil, fmt.Errorf("%w: %q", ErrUnknownName, name)
	}
	return resp.Components, nil
}

// GetMetadata calls the remote GetMetadata method.
func (c *ResolverRPCClient) GetMetadata() PluginInfo {
	var info PluginInfo
	if err := c.client.Call("Plugin.GetMetadata", new(any), &info); err != nil {
		return PluginInfo{}
	}
	return info
}

// WriteInfo encodes the plugin's metadata as indented JSON.
func WriteInfo(w io.Writer, impl Resolver) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(impl.GetMetadata())
}

// Serve runs impl as a resolver plugin. When invoked with InfoFlag it prints
// metadata and exits instead.
func Serve(impl Resolver) {
	if len(os.Args) > 1 && os.Args[1] == InfoFlag {
		if err := WriteInfo(os.Stdout, impl); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding plugin info: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: Handshake,
		Plugins: map[string]plugin.Plugin{
			ResolverPluginName: &ResolverRPC{Impl: impl},
		},
	})
}
