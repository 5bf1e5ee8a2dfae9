package commands

import (
	"fmt"
	"io"

	"github.com/allisson/cuid2/pkg/cuid2"
)

// RunFingerprint prints a fingerprint computed from random. Pinning the printed value in
// CUID2_FINGERPRINT keeps it stable across restarts.
func RunFingerprint(writer io.Writer, random cuid2.RandomFunc, format string) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	fingerprint := cuid2.CreateFingerprint(random)

	if format == "json" {
		return writeJSON(writer, map[string]interface{}{"fingerprint": fingerprint})
	}

	_, err := fmt.Fprintln(writer, fingerprint)
	return err
}
