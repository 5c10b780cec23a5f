package wayland

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// conn is a buffered connection to the Wayland compositor socket.
type conn struct {
	fd         int
	inBuf      []byte
	pendingFds []int
}

// dial connects to the compositor socket derived from XDG_RUNTIME_DIR
// and WAYLAND_DISPLAY.
func dial() (*conn, error) {
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return nil, fmt.Errorf("wayland: XDG_RUNTIME_DIR not set")
	}
	display := os.Getenv("WAYLAND_DISPLAY")
	if display == "" {
		display = "wayland-0"
	}
	sockPath := filepath.Join(runtimeDir, display)

	fd, err := syscall.Socket(syscall.AF_UNIX, syscall.SOCK_STREAM, 0)
	if err != nil {
		return nil, err
	}
	if err := syscall.Connect(fd, &syscall.SockaddrUnix{Name: sockPath}); err != nil {
		syscall.Close(fd) //nolint:errcheck
		return nil, fmt.Errorf("wayland: connect %s: %w", sockPath, err)
	}
	return &conn{fd: fd}, nil
}

func (c *conn) close() {
	syscall.Close(c.fd) //nolint:errcheck
}

// request sends one Wayland request message.
func (c *conn) request(objectID uint32, opcode uint16, args ...[]byte) error {
	var argLen int
	for _, a := range args {
		argLen += len(a)
	}
	size := uint16(8 + argLen)
	buf := make([]byte, 8, size)
	le.PutUint32(buf[0:], objectID)
	le.PutUint32(buf[4:], uint32(opcode)|uint32(size)<<16)
	for _, a := range args {
		buf = append(buf, a...)
	}
	_, err := syscall.Write(c.fd, buf)
	return err
}

// event is one decoded Wayland event. fd is -1 unless the compositor
// passed a file descriptor via SCM_RIGHTS.
type event struct {
	objectID uint32
	opcode   uint16
	payload  []byte
	fd       int
}

// nextEvent reads the next complete Wayland event.
func (c *conn) nextEvent() (event, error) {
	for {
		if len(c.inBuf) >= 8 {
			sizeOpcode := le.Uint32(c.inBuf[4:8])
			size := int(sizeOpcode >> 16)
			if size >= 8 && len(c.inBuf) >= size {
				ev := event{
					objectID: le.Uint32(c.inBuf[0:4]),
					opcode:   uint16(sizeOpcode & 0xffff),
					payload:  make([]byte, size-8),
					fd:       -1,
				}
				copy(ev.payload, c.inBuf[8:size])
				c.inBuf = c.inBuf[size:]
				if len(c.pendingFds) > 0 {
					ev.fd = c.pendingFds[0]
					c.pendingFds = c.pendingFds[1:]
				}
				return ev, nil
			}
		}

		buf := make([]byte, 4096)
		oob := make([]byte, syscall.CmsgSpace(4*8)) // room for up to 8 fds
		n, oobn, _, _, err := syscall.Recvmsg(c.fd, buf, oob, 0)
		if err != nil {
			return event{}, err
		}
		if n == 0 {
			return event{}, fmt.Errorf("wayland: connection closed")
		}
		c.inBuf = append(c.inBuf, buf[:n]...)

		if oobn > 0 {
			scms, err := syscall.ParseSocketControlMessage(oob[:oobn])
			if err == nil {
				for _, scm := range scms {
					if rights, err := syscall.ParseUnixRights(&scm); err == nil {
						c.pendingFds = append(c.pendingFds, rights...)
					}
				}
			}
		}
	}
}

// closeFd discards an unwanted fd delivered with an event.
func (ev *event) closeFd() {
	if ev.fd >= 0 {
		syscall.Close(ev.fd) //nolint:errcheck
	}
}
