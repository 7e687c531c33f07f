// Package platform holds the macOS-specific glue around the export core:
// version sniffing, default Voice Memos paths and the reveal-in-Finder hook.
package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/graelo/macOSVoiceMemosExporter/internal/util"
)

// MacOSMajorVersion returns the running macOS major version, or 0 when it
// cannot be determined (non-darwin hosts included).
func MacOSMajorVersion() int {
	if runtime.GOOS != "darwin" {
		return 0
	}
	out, err := exec.Command("sw_vers", "-productVersion").Output()
	if err != nil {
		return 0
	}
	return ParseMajorVersion(string(out))
}

// ParseMajorVersion extracts the major version from a product version
// string such as "14.2.1".
func ParseMajorVersion(version string) int {
	version = strings.TrimSpace(version)
	if version == "" {
		return 0
	}
	major, err := strconv.Atoi(strings.SplitN(version, ".", 2)[0])
	if err != nil {
		return 0
	}
	return major
}

// DefaultDatabasePath returns where the given macOS version keeps the Voice
// Memos database. Sonoma (14) moved it into a shared group container.
func DefaultDatabasePath(macMajorVersion int) string {
	home, _ := os.UserHomeDir()
	if macMajorVersion >= 14 {
		return filepath.Join(home, "Library", "Group Containers",
			"group.com.apple.VoiceMemos.shared", "Recordings", "CloudRecordings.db")
	}
	return filepath.Join(home, "Library", "Application Support",
		"com.apple.voicememos", "Recordings", "CloudRecordings.db")
}

// DefaultExportPath returns the default destination folder.
func DefaultExportPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, "Voice Memos Export")
}

// Reveal opens the given folder in the platform file browser. It is
// fire-and-forget: the process is started and never waited on, and failures
// are only logged.
func Reveal(path string) {
	opener := "xdg-open"
	if runtime.GOOS == "darwin" {
		opener = "open"
	}
	if err := exec.Command(opener, path).Start(); err != nil {
		util.LogWarnf("Failed to open file browser at %s: %v", path, err)
	}
}
