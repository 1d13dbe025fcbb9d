package config

// Merge applies layers over base in order, so later layers win.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Base = resolve(out.Base, layer.Base)
		out.Mode = resolve(out.Mode, layer.Mode)
		out.Contrast = resolve(out.Contrast, layer.Contrast)
		out.ResolverPlugin = resolve(out.ResolverPlugin, layer.ResolverPlugin)
		out.Preview = resolve(out.Preview, layer.Preview)
	}
	return out
}

func resolve[T any](current T, override *T) T {
	if override == nil {
		return current
	}
	return *override
}
