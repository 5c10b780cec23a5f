// Package wayland implements just enough of the Wayland wire protocol
// to own the clipboard selection via zwlr_data_control_v1 and serve
// each offered MIME type on demand.
package wayland

import (
	"encoding/binary"
	"fmt"
	"syscall"
)

var le = binary.LittleEndian

// Object IDs we assign from the client range (2–0xfeffffff).
const (
	idDisplay   uint32 = 1
	idRegistry  uint32 = 2
	idCallback1 uint32 = 3 // first sync
	idSeat      uint32 = 4
	idDCManager uint32 = 5 // zwlr_data_control_manager_v1
	idDCSource  uint32 = 6 // zwlr_data_control_source_v1
	idDCDevice  uint32 = 7 // zwlr_data_control_device_v1
	idCallback2 uint32 = 8 // second sync
)

// Request opcodes used below.
const (
	opDisplaySync        uint16 = 0
	opDisplayGetRegistry uint16 = 1
	opRegistryBind       uint16 = 0
	opManagerCreateSrc   uint16 = 0
	opManagerGetDevice   uint16 = 1
	opSourceOffer        uint16 = 0
	opDeviceSetSelection uint16 = 0
)

// Event opcodes used below.
const (
	evRegistryGlobal  uint16 = 0
	evCallbackDone    uint16 = 0
	evSourceSend      uint16 = 0
	evSourceCancelled uint16 = 1
)

// Serve claims the clipboard selection and blocks until another client
// takes it over. Each paste request is answered by writing the bytes of
// the requested MIME type to the fd the compositor hands us.
func Serve(formats map[string][]byte) error {
	c, err := dial()
	if err != nil {
		return err
	}
	defer c.close()

	seatName, managerName, err := discoverGlobals(c)
	if err != nil {
		return err
	}

	if err := claimSelection(c, seatName, managerName, formats); err != nil {
		return err
	}

	return serveRequests(c, formats)
}

// discoverGlobals requests the registry and collects the global names
// for wl_seat and the data-control manager.
func discoverGlobals(c *conn) (seatName, managerName uint32, err error) {
	if err = c.request(idDisplay, opDisplayGetRegistry, encodeUint32(idRegistry)); err != nil {
		return
	}
	if err = c.request(idDisplay, opDisplaySync, encodeUint32(idCallback1)); err != nil {
		return
	}

	var seatFound, managerFound bool
	for {
		ev, evErr := c.nextEvent()
		if evErr != nil {
			err = evErr
			return
		}
		ev.closeFd()

		switch {
		case ev.objectID == idRegistry && ev.opcode == evRegistryGlobal:
			if len(ev.payload) < 4 {
				continue
			}
			name := le.Uint32(ev.payload[:4])
			iface, _, decErr := decodeString(ev.payload[4:])
			if decErr != nil {
				continue
			}
			switch iface {
			case "wl_seat":
				seatName = name
				seatFound = true
			case "zwlr_data_control_manager_v1":
				managerName = name
				managerFound = true
			}

		case ev.objectID == idCallback1 && ev.opcode == evCallbackDone:
			if !seatFound {
				err = fmt.Errorf("wayland: wl_seat not found")
				return
			}
			if !managerFound {
				err = fmt.Errorf("wayland: zwlr_data_control_manager_v1 not found (compositor may not support wlr-data-control)")
				return
			}
			return
		}
	}
}

// claimSelection binds the globals, offers every MIME type, sets the
// selection, and waits for the confirming sync.
func claimSelection(c *conn, seatName, managerName uint32, formats map[string][]byte) error {
	// wl_registry.bind new_id encodes inline: [name][interface string][version][new_id]
	if err := c.request(idRegistry, opRegistryBind,
		encodeUint32(seatName),
		encodeString("wl_seat"),
		encodeUint32(1),
		encodeUint32(idSeat),
	); err != nil {
		return err
	}
	if err := c.request(idRegistry, opRegistryBind,
		encodeUint32(managerName),
		encodeString("zwlr_data_control_manager_v1"),
		encodeUint32(2),
		encodeUint32(idDCManager),
	); err != nil {
		return err
	}

	if err := c.request(idDCManager, opManagerCreateSrc, encodeUint32(idDCSource)); err != nil {
		return err
	}
	for mimeType := range formats {
		if err := c.request(idDCSource, opSourceOffer, encodeString(mimeType)); err != nil {
			return err
		}
	}

	if err := c.request(idDCManager, opManagerGetDevice,
		encodeUint32(idDCDevice),
		encodeUint32(idSeat),
	); err != nil {
		return err
	}
	if err := c.request(idDCDevice, opDeviceSetSelection, encodeUint32(idDCSource)); err != nil {
		return err
	}

	if err := c.request(idDisplay, opDisplaySync, encodeUint32(idCallback2)); err != nil {
		return err
	}
	for {
		ev, err := c.nextEvent()
		if err != nil {
			return err
		}
		ev.closeFd()
		if ev.objectID == idCallback2 && ev.opcode == evCallbackDone {
			return nil
		}
	}
}

// serveRequests answers paste requests until ownership is cancelled.
func serveRequests(c *conn, formats map[string][]byte) error {
	for {
		ev, err := c.nextEvent()
		if err != nil {
			// Connection closed means compositor exited; treat as done.
			return nil
		}

		if ev.objectID != idDCSource {
			ev.closeFd()
			continue
		}

		switch ev.opcode {
		case evSourceSend:
			mimeType, _, _ := decodeString(ev.payload)
			if ev.fd >= 0 {
				if data, ok := formats[mimeType]; ok {
					syscall.Write(ev.fd, data) //nolint:errcheck
				}
				syscall.Close(ev.fd) //nolint:errcheck
			}
		case evSourceCancelled:
			return nil
		default:
			ev.closeFd()
		}
	}
}

func encodeUint32(v uint32) []byte {
	b := make([]byte, 4)
	le.PutUint32(b, v)
	return b
}

// encodeString encodes a Wayland string: uint32 length (incl. null),
// bytes, padding to 4-byte alignment.
func encodeString(s string) []byte {
	sBytes := append([]byte(s), 0) // null terminator
	length := len(sBytes)
	padded := (length + 3) &^ 3
	buf := make([]byte, 4+padded)
	le.PutUint32(buf[0:], uint32(length))
	copy(buf[4:], sBytes)
	return buf
}

// decodeString reads a Wayland string from payload bytes.
func decodeString(data []byte) (string, []byte, error) {
	if len(data) < 4 {
		return "", data, fmt.Errorf("wayland: short string length field")
	}
	length := int(le.Uint32(data[:4]))
	data = data[4:]
	if length == 0 {
		return "", data, nil
	}
	padded := (length + 3) &^ 3
	if len(data) < padded {
		return "", data, fmt.Errorf("wayland: short string data")
	}
	s := string(data[:length-1]) // exclude null terminator
	return s, data[padded:], nil
}
