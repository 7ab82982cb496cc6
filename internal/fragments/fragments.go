// Package fragments resolves the optional behavioral source fragments that
// get embedded verbatim into the rendered graph description. The expansion
// engine itself never touches the file system; the renderer queries an
// injected Lookup instead.
//
// Fragments are addressed by naming convention: <device>_shared,
// <device>_rts, <device>_idle, <device>_receive_<message> and
// <device>_send_<message>. A missing fragment is not an error.
package fragments

import (
	"os"
	"path/filepath"
)

// Lookup resolves a fragment id to its source text. The boolean mirrors map
// access: false means the fragment does not exist.
type Lookup interface {
	Fragment(id string) (string, bool)
}

// Map is an in-memory Lookup for tests and embedders.
type Map map[string]string

// Fragment implements Lookup.
func (m Map) Fragment(id string) (string, bool) {
	text, ok := m[id]
	return text, ok
}

// None is an empty Lookup: every fragment is absent.
var None Lookup = Map(nil)

// Dir is a Lookup backed by a directory of <id>.c files.
type Dir struct {
	root string
}

// NewDir creates a directory-backed fragment lookup rooted at the given path.
func NewDir(root string) *Dir {
	return &Dir{root: root}
}

// Fragment implements Lookup by reading <root>/<id>.c. Any read failure,
// including absence, reports the fragment as missing.
func (d *Dir) Fragment(id string) (string, bool) {
	raw, err := os.ReadFile(filepath.Join(d.root, id+".c"))
	if err != nil {
		return "", false
	}
	return string(raw), true
}

// SharedID names a device type's shared code fragment.
func SharedID(device string) string { return device + "_shared" }

// ReadyToSendID names a device type's ready-to-send handler fragment.
func ReadyToSendID(device string) string { return device + "_rts" }

// IdleID names a device type's idle handler fragment.
func IdleID(device string) string { return device + "_idle" }

// ReceiveID names the receive handler fragment for a device/message pair.
func ReceiveID(device, message string) string { return device + "_receive_" + message }

// SendID names the send handler fragment for a device/message pair.
func SendID(device, message string) string { return device + "_send_" + message }
