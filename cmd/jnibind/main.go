// Command jnibind is the offline bindings generator (spec §4.8, §6):
// it turns Java class metadata into typed Go wrapper packages.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galago-jni/jni/internal/jnibind"
	"github.com/galago-jni/jni/internal/jnibind/preview"
	"github.com/galago-jni/jni/internal/uiutil"
)

var (
	rootPath           string
	output             string
	outputDir          string
	patterns           []string
	typeMapArgs        []string
	skipSigs           []string
	renamePairs        []string
	noNativeInterfaces bool
	noJNIInit          bool
	outputTypeMap      string
	publicRoot         string
	verbose            bool

	apiLevel         string
	hiddenAPIFlags   string
	allowUnsupported bool
	maxTarget        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "jnibind",
		Short: "Generate typed Go wrappers for Java classes from class/jar/source/Android inputs",
	}

	addCommonFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&rootPath, "root", "", "directory searched for input files (default \".\"); not applied to generated imports")
		cmd.Flags().StringVar(&output, "output", "", "single output file")
		cmd.Flags().StringVar(&outputDir, "output-dir", "", "output directory, one file per package")
		cmd.Flags().StringArrayVar(&patterns, "pattern", nil, "glob pattern selecting inputs (repeatable)")
		cmd.Flags().StringArrayVar(&typeMapArgs, "type-map", nil, "GoPath=java.Dotted.Name mapping (repeatable), or a file path")
		cmd.Flags().StringArrayVar(&skipSigs, "skip", nil, "DEX signature to omit (repeatable)")
		cmd.Flags().StringArrayVar(&renamePairs, "name", nil, "DEX-sig=new-name rename (repeatable)")
		cmd.Flags().BoolVar(&noNativeInterfaces, "no-native-interfaces", false, "accepted but has no effect: native method interfaces are not emitted either way")
		cmd.Flags().BoolVar(&noJNIInit, "no-jni-init", false, "emit the init thunk under a per-class name instead of jni_init")
		cmd.Flags().StringVar(&outputTypeMap, "output-type-map", "", "dump the resolved type map to this file")
		cmd.Flags().StringVar(&publicRoot, "public-root", "", "only read input files that lie under this directory")
		cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print a colorized signature listing before each class preview")
	}

	classfileCmd := &cobra.Command{
		Use:   "classfile",
		Short: "Generate bindings from .class files",
		RunE:  func(cmd *cobra.Command, args []string) error { return runGenerate(cmd, args, nil) },
	}
	addCommonFlags(classfileCmd)

	javaCmd := &cobra.Command{
		Use:   "java",
		Short: "Generate bindings from Java source",
		RunE:  func(cmd *cobra.Command, args []string) error { return runGenerate(cmd, args, nil) },
	}
	addCommonFlags(javaCmd)

	androidCmd := &cobra.Command{
		Use:   "android",
		Short: "Generate bindings from an Android SDK's android.jar + stubs, hidden-API filtered",
		RunE:  runGenerateAndroid,
	}
	addCommonFlags(androidCmd)
	androidCmd.Flags().StringVar(&apiLevel, "api-level", "", "target Android API level")
	androidCmd.Flags().StringVar(&hiddenAPIFlags, "hiddenapi-flags", "", "path to hiddenapi-flags.csv")
	androidCmd.Flags().BoolVar(&allowUnsupported, "allow-unsupported", false, "admit members flagged \"unsupported\"")
	androidCmd.Flags().StringVar(&maxTarget, "max-target", "", "admit max-target-<letter> members at or above this level")

	annotationsCmd := &cobra.Command{
		Use:   "annotations",
		Short: "Write marker annotation source files to a package directory",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnnotations,
	}

	rootCmd.AddCommand(classfileCmd, javaCmd, androidCmd, annotationsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, uiutil.Error(err.Error()))
		os.Exit(1)
	}
}

// ExternalParser is the opaque bytecode/source-parsing collaborator
// (spec §1 non-goals): the CLI ships without one wired in, since
// parsing .class/.jar/source files is explicitly out of this repo's
// scope. A build embedding jnibind as a library sets this to a real
// parser before calling any generate command.
var ExternalParser jnibind.ClassParser

func loadTypeMap() (*jnibind.TypeMap, error) {
	tm := jnibind.NewTypeMap()
	for _, arg := range typeMapArgs {
		if strings.Contains(arg, "=") && !strings.HasSuffix(arg, ".txt") && !strings.HasSuffix(arg, ".yaml") && !strings.HasSuffix(arg, ".yml") {
			lhs, rhs, _ := strings.Cut(arg, "=")
			pkg, typ := splitLast(lhs)
			tm.Set(rhs, jnibind.TypeMapEntry{GoPackage: pkg, GoType: typ})
			continue
		}
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("jnibind: opening --type-map file %s: %w", arg, err)
		}
		loaded, err := jnibind.LoadTypeMapFile(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		for k, v := range loaded.All() {
			tm.Set(k, v)
		}
	}
	return tm, nil
}

func splitLast(s string) (string, string) {
	idx := strings.LastIndex(s, ".")
	if idx < 0 {
		return "", s
	}
	return s[:idx], s[idx+1:]
}

func parseSkipAndRename() (map[string]bool, map[string]string) {
	skip := make(map[string]bool, len(skipSigs))
	for _, s := range skipSigs {
		skip[s] = true
	}
	rename := make(map[string]string, len(renamePairs))
	for _, pair := range renamePairs {
		sig, name, ok := strings.Cut(pair, "=")
		if ok {
			rename[sig] = name
		}
	}
	return skip, rename
}

func discoverInputs() ([]string, error) {
	var files []string
	walkRoot := rootPath
	if walkRoot == "" {
		walkRoot = "."
	}
	err := filepath.Walk(walkRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if publicRoot != "" {
			rel, relErr := filepath.Rel(publicRoot, path)
			if relErr != nil || strings.HasPrefix(rel, "..") {
				return nil // outside the declared public surface, per --public-root
			}
		}
		if len(patterns) == 0 {
			files = append(files, path)
			return nil
		}
		for _, pat := range patterns {
			if ok, _ := filepath.Match(pat, filepath.Base(path)); ok {
				files = append(files, path)
				break
			}
		}
		return nil
	})
	return files, err
}

func runGenerate(cmd *cobra.Command, args []string, parser jnibind.ClassParser) error {
	if parser == nil {
		parser = ExternalParser
	}
	if parser == nil {
		return fmt.Errorf("jnibind: no class parser wired; bytecode/source parsing is an external collaborator (spec non-goal)")
	}

	types, err := loadTypeMap()
	if err != nil {
		return err
	}
	skip, rename := parseSkipAndRename()

	inputs, err := discoverInputs()
	if err != nil {
		return fmt.Errorf("jnibind: discovering inputs: %w", err)
	}

	for _, path := range inputs {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("jnibind: reading %s: %w", path, err)
		}
		class, err := parser.ParseClass(data)
		if err != nil {
			return fmt.Errorf("jnibind: parsing %s: %w", path, err)
		}
		opts := jnibind.EmitOptions{
			GoPackage:          packageNameFor(class),
			NoNativeInterfaces: noNativeInterfaces,
			NoJNIInit:          noJNIInit,
			Skip:               skip,
			Rename:             rename,
			Types:              types,
		}
		if err := emitOne(class, opts); err != nil {
			return err
		}
	}

	if outputTypeMap != "" {
		f, err := os.Create(outputTypeMap)
		if err != nil {
			return fmt.Errorf("jnibind: creating --output-type-map file: %w", err)
		}
		defer f.Close()
		return jnibind.WriteTypeMapFile(f, types)
	}
	return nil
}

func runGenerateAndroid(cmd *cobra.Command, args []string) error {
	if ExternalParser == nil {
		return fmt.Errorf("jnibind: no class parser wired; android.jar/stubs parsing is an external collaborator (spec non-goal)")
	}

	var flags jnibind.HiddenAPIFlags
	if hiddenAPIFlags != "" {
		f, err := os.Open(hiddenAPIFlags)
		if err != nil {
			return fmt.Errorf("jnibind: opening --hiddenapi-flags: %w", err)
		}
		defer f.Close()
		parsed, err := jnibind.ParseHiddenAPIFlags(f)
		if err != nil {
			return err
		}
		flags = parsed
	}
	policy := jnibind.HiddenAPIPolicy{AllowUnsupported: allowUnsupported, MaxTarget: maxTarget}

	types, err := loadTypeMap()
	if err != nil {
		return err
	}
	skip, rename := parseSkipAndRename()

	inputs, err := discoverInputs()
	if err != nil {
		return err
	}

	for i := 0; i+1 < len(inputs); i += 2 {
		bytecodeData, err := os.ReadFile(inputs[i])
		if err != nil {
			return err
		}
		stubsData, err := os.ReadFile(inputs[i+1])
		if err != nil {
			return err
		}
		bytecode, err := ExternalParser.ParseClass(bytecodeData)
		if err != nil {
			return err
		}
		stubs, err := ExternalParser.ParseClass(stubsData)
		if err != nil {
			return err
		}
		class := jnibind.Intersect(bytecode, stubs)
		if flags != nil {
			class, err = jnibind.FilterHiddenAPI(class, flags, policy)
			if err != nil {
				return err
			}
		}
		opts := jnibind.EmitOptions{
			GoPackage:          packageNameFor(class),
			NoNativeInterfaces: noNativeInterfaces,
			NoJNIInit:          noJNIInit,
			Skip:               skip,
			Rename:             rename,
			Types:              types,
		}
		if err := emitOne(class, opts); err != nil {
			return err
		}
	}
	return nil
}

func emitOne(class jnibind.ClassInfo, opts jnibind.EmitOptions) error {
	switch {
	case output != "":
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("jnibind: creating --output file: %w", err)
		}
		defer f.Close()
		return jnibind.EmitClass(f, class, opts)
	case outputDir != "":
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("jnibind: creating --output-dir: %w", err)
		}
		path := filepath.Join(outputDir, opts.GoPackage+".go")
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("jnibind: creating %s: %w", path, err)
		}
		defer f.Close()
		return jnibind.EmitClass(f, class, opts)
	default:
		if verbose {
			preview.ClassInfoSummary(os.Stdout, class)
			preview.Members(os.Stdout, class)
		}
		return preview.Class(os.Stdout, class, opts)
	}
}

func packageNameFor(c jnibind.ClassInfo) string {
	parts := strings.Split(c.Package, ".")
	if len(parts) == 0 || c.Package == "" {
		return "root"
	}
	return strings.ToLower(parts[len(parts)-1])
}

const annotationMarkerHeader = "// Code generated by jnibind annotations. DO NOT EDIT.\n\npackage "

var annotationFiles = map[string]string{
	"keep.go":        "\n\n// Keep marks a type or member that must survive dead-code elimination\n// because it is only referenced from generated JNI bindings.\ntype Keep struct{}\n",
	"nativemethod.go": "\n\n// NativeMethod marks a function as a JNI native-method entry point.\ntype NativeMethod struct{}\n",
	"skip.go":         "\n\n// Skip marks a member the generator should omit from bindings.\ntype Skip struct{}\n",
	"rename.go":       "\n\n// Rename records the Go identifier a member should be emitted under.\ntype Rename struct{ GoName string }\n",
}

func runAnnotations(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jnibind: creating annotations package dir: %w", err)
	}
	pkgName := filepath.Base(dir)
	for name, body := range annotationFiles {
		path := filepath.Join(dir, name)
		content := annotationMarkerHeader + pkgName + body
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("jnibind: writing %s: %w", path, err)
		}
	}
	return nil
}
