package xdg

import "os"

// ResolveFile returns legacyPath only when a file exists there and not at
// xdgPath. New files always go to xdgPath.
func ResolveFile(xdgPath, legacyPath string) string {
	if !fileExists(xdgPath) && fileExists(legacyPath) {
		return legacyPath
	}

	return xdgPath
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}
