package jnibind

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// apiLetterOrdinal maps an Android release letter (as used in
// hiddenapi-flags.csv's "max-target-<letter>" flag) to its API level,
// so --max-target comparisons order correctly regardless of alphabet
// wraparound (Android restarted at 'a' after 'z' in Android 12).
var apiLetterOrdinal = map[string]int{
	"k": 19, "l": 21, "m": 23, "n": 25, "o": 27, "p": 28,
	"q": 29, "r": 30, "s": 31, "t": 33, "u": 34, "v": 35,
}

func letterLevel(letter string) (int, error) {
	lvl, ok := apiLetterOrdinal[strings.ToLower(letter)]
	if !ok {
		return 0, fmt.Errorf("jnibind: unknown Android API letter %q", letter)
	}
	return lvl, nil
}

// HiddenAPIPolicy controls which flag combinations in a
// hiddenapi-flags.csv admit a member into the generated bindings, per
// spec §4.8 step 3 and scenario S7.
type HiddenAPIPolicy struct {
	// AllowUnsupported admits members flagged "unsupported".
	AllowUnsupported bool
	// MaxTarget, if non-empty, is the caller's API letter cutoff: a
	// member flagged "max-target-<letter>" is admitted iff its letter's
	// API level is >= MaxTarget's.
	MaxTarget string
}

// Admits reports whether a member carrying the given comma-separated
// CSV flags is allowed under p.
func (p HiddenAPIPolicy) Admits(flags []string) (bool, error) {
	var cutoff int
	hasCutoff := p.MaxTarget != ""
	if hasCutoff {
		lvl, err := letterLevel(p.MaxTarget)
		if err != nil {
			return false, err
		}
		cutoff = lvl
	}
	for _, f := range flags {
		f = strings.TrimSpace(f)
		switch {
		case f == "public-api", f == "sdk":
			return true, nil
		case f == "unsupported":
			if p.AllowUnsupported {
				return true, nil
			}
		case strings.HasPrefix(f, "max-target-"):
			if !hasCutoff {
				continue
			}
			lvl, err := letterLevel(strings.TrimPrefix(f, "max-target-"))
			if err != nil {
				return false, err
			}
			if lvl >= cutoff {
				return true, nil
			}
		}
	}
	return false, nil
}

// HiddenAPIFlags is a DEX signature -> CSV flag list lookup, parsed
// from a hiddenapi-flags.csv (signature, comma-separated flags...).
type HiddenAPIFlags map[string][]string

// ParseHiddenAPIFlags reads a hiddenapi-flags.csv, one
// "signature,flag[,flag...]" record per line. Blank lines and lines
// starting with '#' are ignored.
func ParseHiddenAPIFlags(r io.Reader) (HiddenAPIFlags, error) {
	out := make(HiddenAPIFlags)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, fmt.Errorf("jnibind: hiddenapi-flags.csv line %d: expected signature,flags", lineNo)
		}
		out[fields[0]] = fields[1:]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("jnibind: reading hiddenapi-flags.csv: %w", err)
	}
	return out, nil
}

// FilterHiddenAPI keeps only the methods and fields of c whose DEX
// signature appears in flags and is admitted by policy. A member with
// no entry in flags at all is treated as blocked (conservative: the
// android.jar/stubs intersection should already exclude anything
// outside the public surface, so an unlisted member signals a
// mismatched flags file).
func FilterHiddenAPI(c ClassInfo, flags HiddenAPIFlags, policy HiddenAPIPolicy) (ClassInfo, error) {
	internal := c.InternalName()
	out := c
	var err error
	out.Constructors, err = filterMethods(c.Constructors, internal, flags, policy)
	if err != nil {
		return ClassInfo{}, err
	}
	out.Methods, err = filterMethods(c.Methods, internal, flags, policy)
	if err != nil {
		return ClassInfo{}, err
	}
	out.StaticMethods, err = filterMethods(c.StaticMethods, internal, flags, policy)
	if err != nil {
		return ClassInfo{}, err
	}
	out.NativeMethods, err = filterMethods(c.NativeMethods, internal, flags, policy)
	if err != nil {
		return ClassInfo{}, err
	}
	out.Fields, err = filterFields(c.Fields, internal, flags, policy)
	if err != nil {
		return ClassInfo{}, err
	}
	out.StaticFields, err = filterFields(c.StaticFields, internal, flags, policy)
	if err != nil {
		return ClassInfo{}, err
	}
	return out, nil
}

func filterMethods(in []Method, internal string, flags HiddenAPIFlags, policy HiddenAPIPolicy) ([]Method, error) {
	var out []Method
	for _, m := range in {
		admitted, err := admits(m.DEXSignature(internal), flags, policy)
		if err != nil {
			return nil, err
		}
		if admitted {
			out = append(out, m)
		}
	}
	return out, nil
}

func filterFields(in []Field, internal string, flags HiddenAPIFlags, policy HiddenAPIPolicy) ([]Field, error) {
	var out []Field
	for _, f := range in {
		admitted, err := admits(f.DEXSignature(internal), flags, policy)
		if err != nil {
			return nil, err
		}
		if admitted {
			out = append(out, f)
		}
	}
	return out, nil
}

func admits(sig string, flags HiddenAPIFlags, policy HiddenAPIPolicy) (bool, error) {
	fl, ok := flags[sig]
	if !ok {
		return false, nil
	}
	return policy.Admits(fl)
}
