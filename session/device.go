package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DeviceID returns the anonymous device identifier stored at path, creating
// it on first call. isNew is true only on that first creation, which is what
// gates the one-time "newUser" metrics increment.
func DeviceID(path string) (id string, isNew bool, err error) {
	data, err := os.ReadFile(path)
	if err == nil {
		if existing := strings.TrimSpace(string(data)); existing != "" {
			return existing, false, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", false, err
	}

	id = uuid.NewString()
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", false, err
		}
	}
	if err := os.WriteFile(path, []byte(id+"\n"), 0o644); err != nil {
		return "", false, err
	}
	return id, true, nil
}
