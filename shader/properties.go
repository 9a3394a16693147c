// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shader

import "sync"

// PropertyID identifies a global shader property. IDs are process-wide and
// stable for the lifetime of the process.
type PropertyID int

// Well-known property names of the effect shader.
const (
	EffectFactorName = "_EffectFactor"
	ColorFactorName  = "_ColorFactor"
	MainTexName      = "_MainTex"
	BlurTexName      = "_BlurTex"
)

var (
	propMu    sync.Mutex
	propIDs   = map[string]PropertyID{}
	propNames []string
)

// PropertyToID returns the ID for name, assigning a new one on first use.
func PropertyToID(name string) PropertyID {
	propMu.Lock()
	defer propMu.Unlock()

	if id, ok := propIDs[name]; ok {
		return id
	}
	id := PropertyID(len(propNames))
	propIDs[name] = id
	propNames = append(propNames, name)
	return id
}

// Name returns the property name registered for id, or "" if unknown.
func (id PropertyID) Name() string {
	propMu.Lock()
	defer propMu.Unlock()

	if id < 0 || int(id) >= len(propNames) {
		return ""
	}
	return propNames[id]
}

// EffectProperties holds the IDs used by the capture command list.
type EffectProperties struct {
	EffectFactor PropertyID
	ColorFactor  PropertyID
	MainTex      PropertyID
	BlurTex      PropertyID
}

// Properties returns the effect property IDs, resolving them on first call.
var Properties = sync.OnceValue(func() EffectProperties {
	return EffectProperties{
		EffectFactor: PropertyToID(EffectFactorName),
		ColorFactor:  PropertyToID(ColorFactorName),
		MainTex:      PropertyToID(MainTexName),
		BlurTex:      PropertyToID(BlurTexName),
	}
})
