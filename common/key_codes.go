package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Letter keys always report the upper-case code; case is carried by KeyModifier.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyQ     = 81  // Q key (ASCII)
	KeyE     = 69  // E key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// KeyModifier is a bit set of modifier keys held during a key event.
// The bit values match glfw.ModifierKey.
type KeyModifier uint32

const (
	ModShift   KeyModifier = 0x0001
	ModControl KeyModifier = 0x0002
	ModAlt     KeyModifier = 0x0004
)

// Has reports whether every bit of m is set.
func (k KeyModifier) Has(m KeyModifier) bool {
	return k&m == m
}
