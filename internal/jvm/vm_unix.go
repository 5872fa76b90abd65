//go:build !windows

package jvm

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// platformEncode validates opt as well-formed UTF-8, which is the JVM's
// default option encoding on every non-Windows platform this bridge
// targets.
func platformEncode(opt string) (string, error) {
	if len(opt) > maxPlatformOptionBytes {
		return "", fmt.Errorf("option exceeds %d bytes", maxPlatformOptionBytes)
	}
	if !utf8.ValidString(opt) {
		return "", errors.New("option is not valid UTF-8")
	}
	return opt, nil
}
