package template

import "slices"

// Environment is the data rendered into the shell.nix template.
// Fields are exported for use with Go's text/template package.
type Environment struct {
	// Packages are nixpkgs attribute names placed in buildInputs, in order.
	Packages []string

	// SetupLines are shell commands placed in shellHook, in order.
	SetupLines []string
}

// clone returns a deep copy so callers cannot mutate the language tables.
func (e Environment) clone() Environment {
	return Environment{
		Packages:   slices.Clone(e.Packages),
		SetupLines: slices.Clone(e.SetupLines),
	}
}
