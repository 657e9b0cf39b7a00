// Package ident generates row keys for newly registered records.
package ident

import (
	"encoding/hex"

	"github.com/google/uuid"
)

// New returns a fresh row key of the form "<prefix>-<32 hex chars>", backed
// by a random UUID. Keys are unique at creation time without any
// coordination between concurrent writers.
func New(prefix string) string {
	u := uuid.New()
	return prefix + "-" + hex.EncodeToString(u[:])
}
