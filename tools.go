//go:build tools

// Package talker pins the code generators run by go generate, so mockgen
// resolves to the version recorded in go.mod.
package talker

import (
	_ "go.uber.org/mock/mockgen"
)
