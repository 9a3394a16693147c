// Package widget adapts a backdrop.Capturer to a UI renderer.
//
// The renderer asks each Renderable whether it is visible and collects its
// geometry into a Mesh. A Backdrop emits one textured quad covering its
// bounds, or nothing while there is no published image or its tint is
// transparent.
package widget
