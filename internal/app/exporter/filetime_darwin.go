//go:build darwin

package exporter

import (
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// setFileCreationTime needs SetFile from the Xcode command line tools. When it
// is missing the creation time stays at the write time.
func setFileCreationTime(path string, created time.Time) error {
	if created.IsZero() {
		return nil
	}
	setFilePath, err := exec.LookPath("SetFile")
	if err != nil {
		return nil
	}
	stamp := created.Local().Format("01/02/2006 15:04:05")
	out, err := exec.Command(setFilePath, "-d", stamp, path).CombinedOutput()
	if err != nil {
		return fmt.Errorf("SetFile %s: %w: %s", path, err, strings.TrimSpace(string(out)))
	}
	return nil
}
