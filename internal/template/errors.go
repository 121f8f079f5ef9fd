// Package template renders the files nixinit writes: the shell.nix
// environment descriptor (from an embedded Go text/template) and the
// .envrc activation stub.
package template

import "errors"

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates the named template is not in the filesystem.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrMissingTemplateKey indicates the template referenced data that was not provided.
	ErrMissingTemplateKey = errors.New("missing template key")

	// ErrUnexpandedToken indicates template markers survived rendering.
	ErrUnexpandedToken = errors.New("unexpanded template token")

	// ErrUnknownLanguage indicates a language with no environment definition.
	ErrUnknownLanguage = errors.New("no environment defined for language")
)
