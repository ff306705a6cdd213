package cmd

import (
	"fmt"

	"github.com/liberta-cli/liberta/provider"
	"github.com/liberta-cli/liberta/provider/icl"
	"github.com/liberta-cli/liberta/source"
)

// enabledSource creates the ICL source and enables it with the built-in
// descriptor. Commands that talk to the member site go through this.
func enabledSource() source.Source {
	p, ok := provider.Get(icl.PlatformID).Get()
	if !ok {
		handleErr(fmt.Errorf("provider not found: %s", icl.PlatformID))
	}

	src := p.CreateSource()
	handleErr(src.Enable(nil, nil, ""))

	return src
}
