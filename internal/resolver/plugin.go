package resolver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"
	goplugin "github.com/hashicorp/go-plugin"

	"github.com/jmylchreest/legible/internal/colour"
	pluginapi "github.com/jmylchreest/legible/pkg/plugin"
)

// infoTimeout bounds the --plugin-info query.
const infoTimeout = 5 * time.Second

// remoteResolver is the part of the dispensed RPC client Plugin uses.
type remoteResolver interface {
	ResolveName(name string) ([]uint8, error)
	GetMetadata() pluginapi.PluginInfo
}

// Plugin resolves names through an out-of-process resolver plugin.
type Plugin struct {
	path   string
	logger hclog.Logger

	mu     sync.Mutex
	client *goplugin.Client
	remote remoteResolver
	info   pluginapi.PluginInfo
}

// OpenPlugin queries the plugin at path for its metadata, checks protocol
// compatibility and starts it. Close must be called to stop the process.
func OpenPlugin(ctx context.Context, path string, logger hclog.Logger) (*Plugin, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	info, err := queryPluginInfo(ctx, path)
	if err != nil {
		return nil, err
	}

	ok, err := pluginapi.IsCompatible(info.ProtocolVersion)
	if err != nil {
		return nil, fmt.Errorf("plugin %s protocol: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("plugin %s speaks protocol %s, need >= %s",
			path, info.ProtocolVersion, pluginapi.MinCompatibleVersion)
	}

	p := &Plugin{
		path:   path,
		logger: logger.Named("plugin"),
		info:   info,
	}
	if err := p.start(); err != nil {
		return nil, err
	}

	p.logger.Debug("resolver plugin started", "name", info.Name, "version", info.Version)
	return p, nil
}

func (p *Plugin) start() error {
	p.client = goplugin.NewClient(&goplugin.ClientConfig{
		HandshakeConfig:  pluginapi.Handshake,
		Plugins:          pluginapi.PluginMap(),
		Cmd:              exec.Command(p.path),
		AllowedProtocols: []goplugin.Protocol{goplugin.ProtocolNetRPC},
		Logger:           p.logger,
	})

	rpcClient, err := p.client.Client()
	if err != nil {
		p.client.Kill()
		return fmt.Errorf("failed to get RPC client: %w", err)
	}

	raw, err := rpcClient.Dispense(pluginapi.ResolverPluginName)
	if err != nil {
		p.client.Kill()
		return fmt.Errorf("failed to dispense plugin: %w", err)
	}

	remote, ok := raw.(remoteResolver)
	if !ok {
		p.client.Kill()
		return fmt.Errorf("plugin %s dispensed unexpected type %T", p.path, raw)
	}
	p.remote = remote
	return nil
}

// queryPluginInfo runs the plugin with the info flag and decodes its
// metadata.
func queryPluginInfo(ctx context.Context, path string) (pluginapi.PluginInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, infoTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, pluginapi.InfoFlag)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return pluginapi.PluginInfo{}, fmt.Errorf("failed to query plugin info from %s: %w (stderr: %s)",
			path, err, bytes.TrimSpace(stderr.Bytes()))
	}

	var info pluginapi.PluginInfo
	if err := json.Unmarshal(stdout.Bytes(), &info); err != nil {
		return pluginapi.PluginInfo{}, fmt.Errorf("failed to decode plugin info from %s: %w", path, err)
	}
	return info, nil
}

// Info returns the metadata the plugin reported at start-up.
func (p *Plugin) Info() pluginapi.PluginInfo {
	return p.info
}

// ResolveName implements colour.NameResolver.
func (p *Plugin) ResolveName(name string) ([]uint8, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.remote == nil {
		return nil, fmt.Errorf("%w: plugin is closed", colour.ErrNoResolver)
	}

	data, err := p.remote.ResolveName(name)
	if errors.Is(err, pluginapi.ErrUnknownName) {
		return nil, fmt.Errorf("%w: %w", colour.ErrUnresolvable, err)
	}
	if err != nil {
		return nil, fmt.Errorf("plugin %s: %w", p.path, err)
	}
	return data, nil
}

// Close stops the plugin process. It is safe to call more than once.
func (p *Plugin) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.client != nil {
		p.client.Kill()
		p.client = nil
	}
	p.remote = nil
}
