//go:build tools
// +build tools

package lexer

// Build-time tool dependencies, kept in go.mod via this file.
import (
	_ "golang.org/x/tools/cmd/stringer"
)
