// Package preview renders a generated class module for the
// generator's --verbose/--output-dir-less preview path: a header line
// naming the class, followed by its chroma-colorized Go source, per
// spec §6's CLI surface and galago's own terminal colorization
// conventions.
package preview

import (
	"fmt"
	"io"
	"strings"

	"github.com/galago-jni/jni/internal/jnibind"
	"github.com/galago-jni/jni/internal/uiutil"
)

// Class writes a colorized preview of the module EmitClass would
// produce for c to w, without touching the filesystem. Used when no
// --output/--output-dir is given.
func Class(w io.Writer, c jnibind.ClassInfo, opts jnibind.EmitOptions) error {
	var buf strings.Builder
	if err := jnibind.EmitClass(&buf, c, opts); err != nil {
		return err
	}

	header := fmt.Sprintf("// %s -> %s.go", c.Name, opts.GoPackage)
	fmt.Fprintln(w, uiutil.Header(header))
	fmt.Fprintln(w, uiutil.Border(strings.Repeat("-", len(header))))
	fmt.Fprintln(w, uiutil.GoSource(buf.String()))
	return nil
}

// ClassInfoSummary writes a one-line, colorized inventory of c's
// members (method/field counts), used ahead of a full preview when
// --verbose is given without a deeper dump.
func ClassInfoSummary(w io.Writer, c jnibind.ClassInfo) {
	summary := fmt.Sprintf("%s: %d ctor, %d methods, %d static methods, %d fields, %d static fields",
		c.Name, len(c.Constructors), len(c.Methods), len(c.StaticMethods), len(c.Fields), len(c.StaticFields))
	fmt.Fprintln(w, uiutil.ClassName(c.Name)+": "+uiutil.Detail(summary[len(c.Name)+2:]))
}

// Members writes one colorized DEX signature line per method and field
// in c, for a --verbose run that wants the exact signatures a
// --skip/--name flag or hiddenapi-flags.csv entry would reference.
func Members(w io.Writer, c jnibind.ClassInfo) {
	internal := c.InternalName()
	for _, m := range c.AllMethods() {
		fmt.Fprintln(w, uiutil.Descriptor(m.DEXSignature(internal)))
	}
	for _, f := range c.AllFields() {
		fmt.Fprintln(w, uiutil.Descriptor(f.DEXSignature(internal)))
	}
}
