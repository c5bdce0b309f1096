package tui

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	switch runtime.GOOS {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the shortcut shown for the current OS
func (s ShortcutKey) Get() string {
	return s.For(GetOS())
}

// For returns the shortcut shown on os
func (s ShortcutKey) For(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Keys returns every variant. All of them are bound on every OS; only the
// help text differs.
func (s ShortcutKey) Keys() []string {
	var keys []string
	for _, k := range []string{s.Default, s.Mac, s.Linux, s.Windows} {
		if k != "" && !Contains(keys, k) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Binding builds a key binding showing the current OS variant in help.
func (s ShortcutKey) Binding(desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(s.Keys()...),
		key.WithHelp(FormatShortcutForHelp(s.Get(), GetOS()), desc),
	)
}

// Shortcuts of the settings editor. Ctrl+S (XOFF) and Ctrl+L (clear screen)
// are often eaten by Linux terminals, so alt variants are offered there.
var Shortcuts = struct {
	Save     ShortcutKey
	Reset    ShortcutKey
	Language ShortcutKey
	Copy     ShortcutKey
	Quit     ShortcutKey
}{
	Save: ShortcutKey{
		Linux:   "alt+s",
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	Reset: ShortcutKey{
		Default: "ctrl+r",
	},
	Language: ShortcutKey{
		Linux:   "alt+l",
		Windows: "alt+l",
		Default: "ctrl+l",
	},
	Copy: ShortcutKey{
		Default: "ctrl+y",
	},
	Quit: ShortcutKey{
		Default: "ctrl+c",
		Mac:     "ctrl+q",
	},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(shortcut string, os OSType) string {
	// M- prefix for Alt on Linux/Windows (common terminal convention)
	if os == OSLinux || os == OSWindows {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	return shortcut
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
