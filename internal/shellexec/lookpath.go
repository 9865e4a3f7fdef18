package shellexec

import (
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
)

// LookPath resolves name to an executable file. Names containing a slash are
// checked directly (relative ones are made absolute against the current
// directory); other names are searched for in PATH.
func LookPath(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	path, err := exec.LookPath(name)
	if err != nil && !errors.Is(err, exec.ErrDot) {
		return "", false
	}
	if strings.Contains(name, "/") && !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", false
		}
		path = abs
	}
	return path, true
}
