// Package clipboard writes multiple representations of one value to the
// system clipboard at once, so the receiving application can pick the
// richest format it understands. On Linux/Wayland it daemonizes a
// clipboard owner that serves every offered MIME type; elsewhere it
// falls back to plain text.
package clipboard

// Formats maps MIME type identifiers to the bytes served for them.
type Formats map[string][]byte
