package bfgo

import (
	"path/filepath"
	"strings"
)

// BinaryPath derives the executable path for a generated source file.
func BinaryPath(srcPath string) string {
	bin := strings.TrimSuffix(srcPath, filepath.Ext(srcPath))
	if bin == srcPath || bin == "" {
		bin = srcPath + ".bin"
	}
	return bin
}
