// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The component owns key handling, viewport scrolling, and rendering. Hosts
// observe content through Config.OnChange and may mutate the buffer
// directly between updates; such mutations are reported on the next Update
// like any other change.
package editor
