// Package defs holds file names and permissions shared across nixinit.
package defs

import "os"

// Generated file names, relative to the target directory.
const (
	// ShellNix is the environment descriptor read by nix-shell.
	ShellNix = "shell.nix"

	// EnvRC is the direnv activation stub.
	EnvRC = ".envrc"
)

// File system permissions for generated files.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)
