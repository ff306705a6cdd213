// Package provider maintains the registry of built-in content providers.
package provider

import (
	"github.com/liberta-cli/liberta/provider/icl"
	"github.com/liberta-cli/liberta/source"
	"github.com/samber/mo"
)

// Provider is an available content source factory.
type Provider struct {
	ID   string
	Name string

	// CreateSource constructs a fresh, not yet enabled source instance.
	CreateSource func() source.Source
}

func (p Provider) String() string {
	return p.Name
}

// builtins are the compiled-in providers, in display order.
var builtins = []Provider{
	{
		ID:   icl.PlatformID,
		Name: icl.PlatformName,
		CreateSource: func() source.Source {
			return icl.New()
		},
	},
}

// Builtins returns all compiled-in providers.
func Builtins() []Provider {
	return builtins
}

// Get finds a provider by its platform identifier.
func Get(id string) mo.Option[Provider] {
	for _, p := range builtins {
		if p.ID == id {
			return mo.Some(p)
		}
	}

	return mo.None[Provider]()
}
