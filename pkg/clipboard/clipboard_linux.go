//go:build linux

package clipboard

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"syscall"

	"artclip/pkg/clipboard/internal/wayland"

	atotto "github.com/atotto/clipboard"
)

// Write puts every format on the clipboard. On Wayland it spawns a
// background clipboard-owner process serving all of them; on X11 only
// the plain-text fallback is written.
func Write(formats Formats, fallback string) error {
	if os.Getenv("WAYLAND_DISPLAY") == "" {
		// X11 fallback: plain text only.
		return atotto.WriteAll(fallback)
	}
	return spawnOwner(expand(formats, fallback))
}

// expand adds the conventional aliases for the plain-text fallback so
// both old and new clients can paste.
func expand(formats Formats, fallback string) Formats {
	out := make(Formats, len(formats)+3)
	for mime, data := range formats {
		out[mime] = data
	}
	plain := []byte(fallback)
	if existing, ok := out["text/plain"]; ok {
		plain = existing
	} else {
		out["text/plain"] = plain
	}
	for _, alias := range []string{"text/plain;charset=utf-8", "UTF8_STRING", "STRING"} {
		if _, ok := out[alias]; !ok {
			out[alias] = plain
		}
	}
	return out
}

func spawnOwner(formats Formats) error {
	payload, err := json.Marshal(formats)
	if err != nil {
		return err
	}

	// Re-exec this binary as a daemonised subprocess that owns the
	// selection until someone else copies.
	cmd := exec.Command(os.Args[0], "__clipboard-serve")
	cmd.Stdin = bytes.NewReader(payload)
	// Detach from the parent's process group so the child survives parent exit.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	return cmd.Start() // don't Wait — parent returns immediately
}

// Serve is invoked by the hidden __clipboard-serve command. It runs the
// Wayland clipboard owner, blocking until ownership is cancelled.
func Serve(formats Formats) error {
	return wayland.Serve(formats)
}
