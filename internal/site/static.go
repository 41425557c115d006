package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// CopyStatic copies the tree below src into dst, skipping dot files.
// If clean is set, dst is removed first.
func CopyStatic(src, dst string, clean bool) error {
	if clean {
		if err := os.RemoveAll(dst); err != nil {
			return fmt.Errorf("failed to clean %s: %w", dst, err)
		}
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read static directory: %w", err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		from, to := filepath.Join(src, e.Name()), filepath.Join(dst, e.Name())
		if e.IsDir() {
			if err := CopyStatic(from, to, false); err != nil {
				return err
			}
			continue
		}
		tracer().Debugf("copying %s to %s", from, to)
		if err := copyFile(from, to); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(from, to string) error {
	in, err := os.Open(from)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(to)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s: %w", from, err)
	}
	return out.Close()
}
