// Package resolver provides colour name resolvers for colour.ParseCSS: CSS
// keywords, CSS functional notation, out-of-process plugins and chains of
// these.
package resolver

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/legible/internal/colour"
)

// Default returns the resolver used when none is configured: functional
// notation, then CSS keywords, then terminal colour names.
func Default() Chain {
	return Chain{Functional{}, Keywords{}, Terminal{}}
}

// Chain tries each resolver in order and returns the first success.
type Chain []colour.NameResolver

// ResolveName implements colour.NameResolver.
func (c Chain) ResolveName(name string) ([]uint8, error) {
	if len(c) == 0 {
		return nil, colour.ErrNoResolver
	}

	errs := make([]error, 0, len(c))
	for _, r := range c {
		data, err := r.ResolveName(name)
		if err == nil {
			return data, nil
		}
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("%q: %w", name, errors.Join(errs...))
}

// With returns a new chain with extra resolvers tried before c.
func (c Chain) With(first ...colour.NameResolver) Chain {
	out := make(Chain, 0, len(first)+len(c))
	out = append(out, first...)
	return append(out, c...)
}
