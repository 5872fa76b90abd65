// Package uiutil: this file registers the IDA-style dark theme shared by
// generator preview output.
package uiutil

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

func init() {
	_ = DisasmDark
}

// DisasmDark is the dark terminal theme generated Go source and DEX
// signatures are previewed in, carried over from galago's IDA-Pro-style
// disassembly palette since it already has the high-contrast
// black-background look a --verbose preview wants.
var DisasmDark = styles.Register(chroma.MustNewStyle("disasm-dark", chroma.StyleEntries{
	chroma.Text:           "#FFFFFF",    // White default
	chroma.Background:     "bg:#000000", // Pure black background
	chroma.Comment:        "#FF8000",    // Orange comments
	chroma.CommentPreproc: "#FF8000",    // Same for preprocessor comments

	chroma.Keyword:       "#FFFFFF", // Go keywords (func, package, return) in white
	chroma.KeywordPseudo: "#FFFFFF",
	chroma.Name:          "#87CEEB", // Identifiers in cyan
	chroma.NameBuiltin:   "#87CEEB", // Builtins (error, string, int32) in cyan
	chroma.NameVariable:  "#87CEEB",

	chroma.LiteralNumber:        "#FF80C0", // Decimal numbers in pink
	chroma.LiteralNumberHex:     "#FF80C0", // Hex numbers in pink
	chroma.LiteralNumberBin:     "#FF80C0", // Binary numbers in pink
	chroma.LiteralNumberOct:     "#FF80C0", // Octal numbers in pink
	chroma.LiteralNumberInteger: "#FF80C0", // Integer literals in pink
	chroma.LiteralNumberFloat:   "#FF80C0", // Float literals in pink

	chroma.NameLabel:    "#FFC800", // Labels in yellow
	chroma.NameFunction: "#FFFFFF", // Function/method names in white

	chroma.Operator:    "#FFFFFF", // Operators in white
	chroma.Punctuation: "#FFFFFF", // Punctuation in white

	chroma.String: "#00FF00", // DEX signatures and string literals in green
}))
