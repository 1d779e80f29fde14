package exportfs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// CopyAttachments copies every attachment that names a regular file directly
// inside src into dst. Identifiers without a matching file (URLs, the webclip
// marker) are skipped silently. A failed copy is passed to onError and the
// remaining attachments are still processed.
func CopyAttachments(attachments []string, src, dst string, onError func(name string, err error)) (int, error) {
	if len(attachments) == 0 {
		return 0, nil
	}
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, fmt.Errorf("read dir %s: %w", src, err)
	}

	copied := 0
	for _, attachment := range attachments {
		for _, ent := range entries {
			if ent.IsDir() || ent.Name() != attachment {
				continue
			}
			if err := copyFile(filepath.Join(src, ent.Name()), filepath.Join(dst, ent.Name())); err != nil {
				if onError != nil {
					onError(attachment, err)
				}
				break
			}
			copied++
			break
		}
	}
	return copied, nil
}

// ApplyFileTimes sets access and modification times of a written file and,
// where the platform supports it, its creation time.
func ApplyFileTimes(path string, created, modified time.Time, setFileCreationTime func(path string, created time.Time) error) error {
	atime, mtime := created, modified
	if mtime.IsZero() {
		mtime = created
	}
	if atime.IsZero() {
		atime = mtime
	}
	if atime.IsZero() || mtime.IsZero() {
		return nil
	}
	if err := os.Chtimes(path, atime, mtime); err != nil {
		return err
	}
	if !created.IsZero() && setFileCreationTime != nil {
		if err := setFileCreationTime(path, created); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
