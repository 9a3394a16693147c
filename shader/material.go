// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/naga"
)

var (
	// ErrUnknownVariant is returned by Lookup for a variant with an
	// out-of-range mode.
	ErrUnknownVariant = errors.New("shader: unknown variant")

	// ErrCompile wraps WGSL compilation failures.
	ErrCompile = errors.New("shader: compile failed")
)

// Passes of the effect material.
const (
	// PassEffect samples _MainTex and applies blur, tone and colour.
	PassEffect = 0

	// PassBlur re-blurs _BlurTex without tone or colour. Used for extra
	// iterations over the working buffer.
	PassBlur = 1
)

// Material is a compiled effect variant. Materials are immutable and shared
// by every capturer using the same variant.
type Material struct {
	variant Variant
	source  string
	spirv   []uint32
}

// NewMaterial wraps precompiled SPIR-V for v. It lets callers ship
// variants compiled offline and bypass Lookup.
func NewMaterial(v Variant, source string, spirv []uint32) *Material {
	return &Material{variant: v, source: source, spirv: spirv}
}

// Name returns a debug label for the material.
func (m *Material) Name() string { return "backdrop/effect " + m.variant.String() }

// Variant returns the permutation this material was compiled for.
func (m *Material) Variant() Variant { return m.variant }

// Source returns the WGSL source of the material.
func (m *Material) Source() string { return m.source }

// SPIRV returns the compiled SPIR-V words.
func (m *Material) SPIRV() []uint32 { return m.spirv }

// EntryPoint returns the fragment entry point for pass.
func (m *Material) EntryPoint(pass int) string {
	if pass == PassBlur {
		return BlurEntryPoint
	}
	return EffectEntryPoint
}

// compileWGSL is swapped out by tests to simulate compiler failures.
var compileWGSL = naga.Compile

// materials maps Variant to func() (*Material, error) built by sync.OnceValues.
var materials sync.Map

// Lookup returns the material for v, compiling it on first use. Concurrent
// first lookups of the same variant compile it exactly once; a failed
// compilation is cached as well.
func Lookup(v Variant) (*Material, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d/%d/%d", ErrUnknownVariant, v.Tone, v.Color, v.Blur)
	}
	load, _ := materials.LoadOrStore(v, sync.OnceValues(func() (*Material, error) {
		return compile(v)
	}))
	return load.(func() (*Material, error))()
}

func compile(v Variant) (*Material, error) {
	src := Source(v)
	spirvBytes, err := compileWGSL(src)
	if err != nil {
		slogger().Warn("shader: effect variant failed to compile", "variant", v.String(), "err", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrCompile, v, err)
	}

	// SPIR-V is a stream of little-endian 32-bit words.
	words := make([]uint32, len(spirvBytes)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
	}

	slogger().Info("shader: compiled effect variant", "variant", v.String(), "words", len(words))
	return &Material{variant: v, source: src, spirv: words}, nil
}
