// Package uiutil provides terminal colorization for the bindings generator's
// preview output, sharing its color scheme across --verbose runs.
package uiutil

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// getGoLexer returns the Go lexer, falling back to a generic one.
func getGoLexer() chroma.Lexer {
	candidates := []string{"go", "Go"}
	for _, name := range candidates {
		if lexer := lexers.Get(name); lexer != nil {
			return lexer
		}
	}
	return lexers.Fallback
}

// getPreviewStyle returns the preview style with fallbacks.
func getPreviewStyle() *chroma.Style {
	candidates := []string{"disasm-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter.
func getTerminalFormatter() chroma.Formatter {
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// IsDisabled returns true if colors are disabled via environment.
func IsDisabled() bool {
	return os.Getenv("JNIBIND_NO_COLOR") != "" || os.Getenv("NO_COLOR") != ""
}

// GoSource colorizes a snippet of generated Go source using Chroma, for
// the generator's --verbose emission preview.
func GoSource(src string) string {
	if IsDisabled() {
		return src
	}

	_ = DisasmDark // force style registration
	lexer := getGoLexer()
	style := getPreviewStyle()
	formatter := getTerminalFormatter()

	iterator, err := lexer.Tokenise(nil, src)
	if err != nil {
		return src
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return src
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// ClassName formats a Java class or method name in yellow (IDA-style labels).
func ClassName(name string) string {
	if IsDisabled() {
		return name
	}
	return fmt.Sprintf("\033[38;2;255;200;0m%s\033[0m", name)
}

// Descriptor formats a JNI descriptor string in light blue.
func Descriptor(sig string) string {
	if IsDisabled() {
		return sig
	}
	return fmt.Sprintf("\033[38;2;135;206;235m%s\033[0m", sig)
}

// Detail formats detail text in light gray.
func Detail(detail string) string {
	if IsDisabled() {
		return detail
	}
	return fmt.Sprintf("\033[38;2;180;180;180m%s\033[0m", detail)
}

// Border formats border characters in dark gray.
func Border(s string) string {
	if IsDisabled() {
		return s
	}
	return fmt.Sprintf("\033[38;2;80;80;80m%s\033[0m", s)
}

// Header formats header text in blue (IDA style).
func Header(s string) string {
	if IsDisabled() {
		return s
	}
	return fmt.Sprintf("\033[38;2;86;156;214m%s\033[0m", s)
}

// Error formats error messages in pink.
func Error(s string) string {
	if IsDisabled() {
		return s
	}
	return fmt.Sprintf("\033[38;2;255;128;192m%s\033[0m", s)
}

// StringLit formats string literal values in pink/magenta.
func StringLit(s string) string {
	if IsDisabled() {
		return s
	}
	return fmt.Sprintf("\033[38;2;255;128;192m%s\033[0m", s)
}
