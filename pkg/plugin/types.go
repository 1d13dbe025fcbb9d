package plugin

// ResolveRequest is the RPC argument for a name lookup.
type ResolveRequest struct {
	Name string
}

// ResolveResponse is the RPC reply for a name lookup. Found is false when the
// plugin does not know the name.
type ResolveResponse struct {
	Components []uint8
	Found      bool
}
