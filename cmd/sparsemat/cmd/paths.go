package cmd

import (
	"path/filepath"
	"strings"
)

// resolveInput joins a relative operand name with input.base_dir.
func resolveInput(name string) string {
	if filepath.IsAbs(name) || cfg.Input.BaseDir == "" {
		return name
	}
	return filepath.Join(cfg.Input.BaseDir, name)
}

// fileStem returns the base name cut at its first dot: "a.b.txt" -> "a".
func fileStem(name string) string {
	base := filepath.Base(name)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}

// resultPath names a result <output.dir>/<prefix>_<stem>[_<stem>...].txt
// unless out is set.
func resultPath(out string, inputs ...string) string {
	if out != "" {
		return out
	}
	parts := []string{cfg.Output.Prefix}
	for _, in := range inputs {
		parts = append(parts, fileStem(in))
	}
	return filepath.Join(cfg.Output.Dir, strings.Join(parts, "_")+".txt")
}
