//go:build windows

package jvm

import (
	"fmt"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

// platformEncode transcodes opt from UTF-8 to the Windows ANSI code page
// (CP_ACP), the platform default encoding the JVM's option-string ABI
// expects on this OS. Buffer sizing is overflow-safe: WideCharToMultiByte
// is first called to measure the required byte count before the real
// conversion, and the result is bounded to maxPlatformOptionBytes.
func platformEncode(opt string) (string, error) {
	utf16Str := utf16.Encode([]rune(opt))
	if len(utf16Str) == 0 {
		return "", nil
	}

	needed, err := windows.WideCharToMultiByte(
		windows.CP_ACP, 0, &utf16Str[0], int32(len(utf16Str)), nil, 0, nil, nil)
	if err != nil {
		return "", fmt.Errorf("measuring ACP size: %w", err)
	}
	if int(needed) > maxPlatformOptionBytes {
		return "", fmt.Errorf("option exceeds %d bytes once transcoded to ACP", maxPlatformOptionBytes)
	}

	buf := make([]byte, needed)
	n, err := windows.WideCharToMultiByte(
		windows.CP_ACP, 0, &utf16Str[0], int32(len(utf16Str)), &buf[0], needed, nil, nil)
	if err != nil {
		return "", fmt.Errorf("transcoding option to ACP: %w", err)
	}
	return string(buf[:n]), nil
}
