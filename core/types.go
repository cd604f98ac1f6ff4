// Package core declares Fingerprint, Shell, the Store constructor inputs,
// and the sentinel errors of the reassembly engine's validation stage.
package core

import (
	"errors"

	"goki.dev/mat32/v2"
)

// Sentinel errors for input validation.
var (
	// ErrNoShells indicates an empty input slice.
	ErrNoShells = errors.New("core: input must contain at least one shell")

	// ErrNoMaterial indicates a shell with an empty material token.
	ErrNoMaterial = errors.New("core: shell material is empty")

	// ErrNoSignature indicates a shell with a non-positive structural signature.
	ErrNoSignature = errors.New("core: shell signature must be positive")

	// ErrDuplicateID indicates two input shells sharing the same id.
	ErrDuplicateID = errors.New("core: duplicate shell id")
)

// Fingerprint is the structural descriptor used to test interchangeability
// between shells: an integer topological signature (e.g. vertex count)
// combined with an opaque material token. Immutable value type; two shells
// with equal Fingerprints are interchangeable for matching purposes.
type Fingerprint struct {
	// Signature is the structural signature. Must be positive.
	Signature int64

	// Material is the opaque material token. Must be non-empty.
	// Shells of different materials are never matched together.
	Material string
}

// Shell is one disconnected, topologically contiguous unit of geometry,
// reduced to the data the matcher needs. Shells are read-only inputs:
// the engine copies them into output Assemblies and never mutates them.
//
// ID must be unique within one engine run. Handle is an opaque
// back-reference to the caller's scene object; the engine passes it
// through untouched and never dereferences it.
type Shell struct {
	ID          int
	Fingerprint Fingerprint
	Centroid    mat32.Vec3
	Handle      any
}

// Signature returns the shell's structural signature.
func (s Shell) Signature() int64 { return s.Fingerprint.Signature }

// Material returns the shell's material token.
func (s Shell) Material() string { return s.Fingerprint.Material }
