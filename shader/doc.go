// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shader defines the captured-image effect shader.
//
// The effect is a single full-screen fragment pass parameterised by a
// [Variant]: a tone mode, a colour mode and a blur mode. Each variant is
// generated as WGSL, compiled to SPIR-V with naga, and cached process-wide as
// a read-only [Material]. The first [Lookup] of a variant compiles it; later
// lookups, including concurrent ones, share the same result.
//
// Uniform inputs are exposed as global properties:
//
//	_EffectFactor  vec4(toneLevel, blurRadius / outputWidth, 0, 0)
//	_ColorFactor   vec4(r, g, b, a)
//
// and two samplers, _MainTex (the full-resolution copy) and _BlurTex.
package shader
