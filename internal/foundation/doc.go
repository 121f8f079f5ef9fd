// Package foundation provides the language catalog for nixinit.
//
// The catalog is a closed set of programming languages that nixinit can
// scaffold a development shell for:
//
//   - Rust
//   - Dotnet
//   - Java
//   - NodeJS
//   - Go
//
// Use [ParseLanguage] to turn user input into a [SupportedLanguage]:
//
//	lang, ok := foundation.ParseLanguage(" Rust \n")
//	if !ok {
//	    // re-prompt
//	}
//
// Unrecognized input is not an error; the caller decides whether to
// re-prompt or fail.
package foundation
