package jnibind

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// TypeMap resolves a Java type descriptor or dotted name to the Go
// import path and identifier the generator should emit for it, per
// spec §4.8 step 4 and the --type-map/--output-type-map flags (§6).
type TypeMap struct {
	// entries maps a Java dotted or descriptor form to its Go binding.
	entries map[string]TypeMapEntry
	// unsafe marks types whose mapping is to a bare primitive (the
	// type-map file's "unsafe T => prim" form) rather than a wrapped
	// Go struct, per §6.
	unsafe map[string]bool
}

// TypeMapEntry is one resolved mapping target.
type TypeMapEntry struct {
	GoPackage string // import path, empty for same-package or primitive targets
	GoType    string // identifier within GoPackage
}

// NewTypeMap returns an empty map seeded with the built-in primitive
// and java.lang mappings every generated module needs regardless of
// user-supplied entries.
func NewTypeMap() *TypeMap {
	tm := &TypeMap{entries: make(map[string]TypeMapEntry), unsafe: make(map[string]bool)}
	for java, goType := range builtinTypeMap {
		tm.entries[java] = TypeMapEntry{GoType: goType}
	}
	return tm
}

var builtinTypeMap = map[string]string{
	"int": "int32", "long": "int64", "short": "int16", "byte": "byte",
	"boolean": "bool", "char": "uint16", "float": "float32", "double": "float64",
	"void": "",
}

// Resolve returns the mapping for a dotted Java type name, and whether
// one was found.
func (tm *TypeMap) Resolve(javaType string) (TypeMapEntry, bool) {
	e, ok := tm.entries[javaType]
	return e, ok
}

// All returns every entry currently held, keyed by Java type. Used
// when merging one TypeMap's entries into another.
func (tm *TypeMap) All() map[string]TypeMapEntry {
	return tm.entries
}

// IsUnsafe reports whether javaType was declared via the file's
// "unsafe T => prim" form, meaning the generator should emit the
// primitive directly rather than a checked wrapper.
func (tm *TypeMap) IsUnsafe(javaType string) bool {
	return tm.unsafe[javaType]
}

// Set records or overrides a single mapping, as produced by a
// repeated --type-map go.Type=java.Dotted.Name flag.
func (tm *TypeMap) Set(javaType string, entry TypeMapEntry) {
	tm.entries[javaType] = entry
}

// LoadTypeMapFile parses a --type-map file, auto-detecting between the
// line-oriented "GoPath => java.Dotted.Name" format described in §6
// and a YAML document, for parity with galago's own config loading
// (gopkg.in/yaml.v3). Detection: content starting with '{', or whose
// first non-blank, non-'#' line begins with "mappings:", is treated as
// YAML.
func LoadTypeMapFile(r io.Reader) (*TypeMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("jnibind: reading type-map file: %w", err)
	}
	tm := NewTypeMap()
	trimmed := strings.TrimSpace(string(data))
	if looksLikeYAML(trimmed) {
		if err := tm.loadYAML(data); err != nil {
			return nil, err
		}
		return tm, nil
	}
	if err := tm.loadLineOriented(strings.NewReader(trimmed)); err != nil {
		return nil, err
	}
	return tm, nil
}

func looksLikeYAML(trimmed string) bool {
	if strings.HasPrefix(trimmed, "{") {
		return true
	}
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return strings.HasPrefix(line, "mappings:")
	}
	return false
}

type yamlTypeMap struct {
	Mappings []struct {
		Go     string `yaml:"go"`
		Java   string `yaml:"java"`
		Unsafe string `yaml:"unsafe"`
	} `yaml:"mappings"`
}

func (tm *TypeMap) loadYAML(data []byte) error {
	var doc yamlTypeMap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("jnibind: parsing YAML type-map: %w", err)
	}
	for _, m := range doc.Mappings {
		pkg, typ := splitGoPath(m.Go)
		tm.entries[m.Java] = TypeMapEntry{GoPackage: pkg, GoType: typ}
		if m.Unsafe != "" {
			tm.entries[m.Java] = TypeMapEntry{GoType: m.Unsafe}
			tm.unsafe[m.Java] = true
		}
	}
	return nil
}

// loadLineOriented parses the "#"/"//" commented, line-oriented format
// of §6: `GoPath => "java.Dotted.Name"`, or `unsafe GoPrim => java.Type`
// for a primitive-handle mapping.
func (tm *TypeMap) loadLineOriented(r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		unsafeEntry := false
		if rest, ok := strings.CutPrefix(line, "unsafe "); ok {
			unsafeEntry = true
			line = rest
		}
		lhs, rhs, ok := strings.Cut(line, "=>")
		if !ok {
			return fmt.Errorf("jnibind: type-map line %d: missing '=>'", lineNo)
		}
		goPath := strings.TrimSpace(lhs)
		javaType := strings.Trim(strings.TrimSpace(rhs), `"`)
		if goPath == "" || javaType == "" {
			return fmt.Errorf("jnibind: type-map line %d: empty side of '=>'", lineNo)
		}
		pkg, typ := splitGoPath(goPath)
		tm.entries[javaType] = TypeMapEntry{GoPackage: pkg, GoType: typ}
		tm.unsafe[javaType] = unsafeEntry
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("jnibind: reading type-map: %w", err)
	}
	return nil
}

func splitGoPath(goPath string) (pkg, typ string) {
	idx := strings.LastIndex(goPath, ".")
	if idx < 0 {
		return "", goPath
	}
	return goPath[:idx], goPath[idx+1:]
}

// WriteTypeMapFile serializes tm back to the line-oriented format, for
// --output-type-map.
func WriteTypeMapFile(w io.Writer, tm *TypeMap) error {
	bw := bufio.NewWriter(w)
	for java, entry := range tm.entries {
		goPath := entry.GoType
		if entry.GoPackage != "" {
			goPath = entry.GoPackage + "." + entry.GoType
		}
		if goPath == "" {
			// No line form for an entry without a Go type (the void
			// builtin); NewTypeMap seeds it again on reload.
			continue
		}
		prefix := ""
		if tm.unsafe[java] {
			prefix = "unsafe "
		}
		if _, err := fmt.Fprintf(bw, "%s%s => %q\n", prefix, goPath, java); err != nil {
			return err
		}
	}
	return bw.Flush()
}
