// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/backdrop/shader"
)

// Op is a recorded command operation.
type Op uint8

const (
	// OpGetTemporary allocates a transient target.
	OpGetTemporary Op = iota

	// OpReleaseTemporary frees a transient target.
	OpReleaseTemporary

	// OpSetGlobalVector sets a global shader vector property.
	OpSetGlobalVector

	// OpBlit copies Src to Dst, scaling as needed, optionally through a
	// material pass.
	OpBlit
)

// String returns the op name.
func (o Op) String() string {
	switch o {
	case OpGetTemporary:
		return "GetTemporary"
	case OpReleaseTemporary:
		return "ReleaseTemporary"
	case OpSetGlobalVector:
		return "SetGlobalVector"
	case OpBlit:
		return "Blit"
	default:
		return fmt.Sprintf("Op(%d)", o)
	}
}

// TempID names a transient target within one command list execution.
type TempID int

// TargetKind tells what a TargetRef refers to.
type TargetKind uint8

const (
	// TargetCurrentActive is the camera's active render target.
	TargetCurrentActive TargetKind = iota

	// TargetTemporary is a transient target allocated by OpGetTemporary.
	TargetTemporary

	// TargetTexture is a persistent texture.
	TargetTexture
)

// TargetRef identifies a blit source or destination.
type TargetRef struct {
	Kind    TargetKind
	Temp    TempID
	Texture Texture
}

// CurrentActive refers to the camera's active render target.
func CurrentActive() TargetRef { return TargetRef{Kind: TargetCurrentActive} }

// Temporary refers to a transient target.
func Temporary(id TempID) TargetRef { return TargetRef{Kind: TargetTemporary, Temp: id} }

// TextureTarget refers to a persistent texture.
func TextureTarget(t Texture) TargetRef { return TargetRef{Kind: TargetTexture, Texture: t} }

// Material is a shader program a blit can run through.
type Material interface {
	Name() string
}

// FullSize as a temporary dimension means "the size of the active target".
const FullSize = -1

// Command is one recorded operation. Unused fields are zero.
type Command struct {
	Op Op

	// OpGetTemporary / OpReleaseTemporary.
	Temp          TempID
	Width, Height int
	Filter        FilterMode

	// OpSetGlobalVector.
	Property shader.PropertyID
	Vector   [4]float32

	// OpBlit.
	Src, Dst TargetRef
	Material Material
	Pass     int
}

// CommandList is a prerecorded, replayable list of GPU operations attached to
// a point in a camera's frame.
//
// Recording on a released list is ignored.
type CommandList struct {
	name     string
	cmds     []Command
	released bool
	runs     uint64
}

// NewCommandList creates an empty list with a debug name.
func NewCommandList(name string) *CommandList {
	return &CommandList{name: name}
}

// Name returns the debug name.
func (l *CommandList) Name() string { return l.name }

// Commands returns the recorded commands. The slice must not be modified.
func (l *CommandList) Commands() []Command { return l.cmds }

// Len returns the number of recorded commands.
func (l *CommandList) Len() int { return len(l.cmds) }

// Released reports whether Release has been called.
func (l *CommandList) Released() bool { return l.released }

// MarkExecuted records one complete replay of the list. Backends call it
// after every command ran without error.
func (l *CommandList) MarkExecuted() { l.runs++ }

// Executions returns how many times the list replayed completely. Clear does
// not reset the count.
func (l *CommandList) Executions() uint64 { return l.runs }

func (l *CommandList) record(c Command) {
	if l.released {
		return
	}
	l.cmds = append(l.cmds, c)
}

// GetTemporary allocates transient target id of the given size. Pass
// FullSize for either dimension to match the active target.
func (l *CommandList) GetTemporary(id TempID, width, height int, filter FilterMode) {
	l.record(Command{Op: OpGetTemporary, Temp: id, Width: width, Height: height, Filter: filter})
}

// ReleaseTemporary frees transient target id.
func (l *CommandList) ReleaseTemporary(id TempID) {
	l.record(Command{Op: OpReleaseTemporary, Temp: id})
}

// SetGlobalVector sets a global vector property for subsequent blits.
func (l *CommandList) SetGlobalVector(id shader.PropertyID, v [4]float32) {
	l.record(Command{Op: OpSetGlobalVector, Property: id, Vector: v})
}

// Blit copies src into dst, scaling with the destination's filter.
func (l *CommandList) Blit(src, dst TargetRef) {
	l.record(Command{Op: OpBlit, Src: src, Dst: dst})
}

// BlitMaterial draws src into dst through pass of mat.
func (l *CommandList) BlitMaterial(src, dst TargetRef, mat Material, pass int) {
	l.record(Command{Op: OpBlit, Src: src, Dst: dst, Material: mat, Pass: pass})
}

// Clear drops all recorded commands.
func (l *CommandList) Clear() {
	l.cmds = l.cmds[:0]
}

// Release clears the list and marks it unusable. Safe to call repeatedly.
func (l *CommandList) Release() {
	l.cmds = nil
	l.released = true
}
