//go:build tools

// Package tools pins build-time tools in go.mod.
package tools

import (
	_ "go.uber.org/mock/mockgen"
)
