//go:build !darwin

package exporter

import "time"

func setFileCreationTime(path string, created time.Time) error {
	return nil
}
