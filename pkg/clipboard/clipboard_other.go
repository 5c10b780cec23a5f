//go:build !linux

package clipboard

import atotto "github.com/atotto/clipboard"

// Write puts content on the clipboard. On non-Linux platforms only the
// plain-text fallback is supported.
func Write(formats Formats, fallback string) error {
	return atotto.WriteAll(fallback)
}

// Serve is not used on non-Linux platforms.
func Serve(formats Formats) error {
	return nil
}
