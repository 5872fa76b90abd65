package jnibind

import (
	"strings"
	"testing"
)

// TestHiddenAPIFilterS7 exercises spec §8 scenario S7 exactly.
func TestHiddenAPIFilterS7(t *testing.T) {
	sig := "Landroid/os/Build;->BOARD:Ljava/lang/String;"

	cases := []struct {
		name     string
		flagLine string
		policy   HiddenAPIPolicy
		want     bool
	}{
		{"public-api admitted by default", sig + ",public-api", HiddenAPIPolicy{}, true},
		{"blocked-only rejected", sig + ",blocked", HiddenAPIPolicy{}, false},
		{"max-target-o rejected at cutoff p", sig + ",max-target-o", HiddenAPIPolicy{MaxTarget: "p"}, false},
		{"max-target-o admitted at cutoff o", sig + ",max-target-o", HiddenAPIPolicy{MaxTarget: "o"}, true},
		{"max-target-o admitted at cutoff n", sig + ",max-target-o", HiddenAPIPolicy{MaxTarget: "n"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			flags, err := ParseHiddenAPIFlags(strings.NewReader(c.flagLine))
			if err != nil {
				t.Fatalf("ParseHiddenAPIFlags: %v", err)
			}
			got, err := admits(sig, flags, c.policy)
			if err != nil {
				t.Fatalf("admits: %v", err)
			}
			if got != c.want {
				t.Fatalf("admits() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestHiddenAPIFilterUnsupportedRequiresOptIn(t *testing.T) {
	flags, err := ParseHiddenAPIFlags(strings.NewReader("Lfoo/Bar;->baz()V,unsupported"))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := admits("Lfoo/Bar;->baz()V", flags, HiddenAPIPolicy{}); got {
		t.Fatal("unsupported admitted without AllowUnsupported")
	}
	if got, _ := admits("Lfoo/Bar;->baz()V", flags, HiddenAPIPolicy{AllowUnsupported: true}); !got {
		t.Fatal("unsupported not admitted with AllowUnsupported")
	}
}

func TestFilterHiddenAPIDropsUnlistedMembers(t *testing.T) {
	class := ClassInfo{
		Name: "android.os.Build",
		Methods: []Method{
			{Name: "getFingerprint", ReturnType: "Ljava/lang/String;"},
		},
		Fields: []Field{
			{Name: "BOARD", Type: "Ljava/lang/String;"},
		},
	}
	flags, err := ParseHiddenAPIFlags(strings.NewReader(
		"Landroid/os/Build;->BOARD:Ljava/lang/String;,public-api\n"))
	if err != nil {
		t.Fatal(err)
	}
	filtered, err := FilterHiddenAPI(class, flags, HiddenAPIPolicy{})
	if err != nil {
		t.Fatal(err)
	}
	if len(filtered.Methods) != 0 {
		t.Fatalf("expected getFingerprint to be dropped (unlisted), got %v", filtered.Methods)
	}
	if len(filtered.Fields) != 1 || filtered.Fields[0].Name != "BOARD" {
		t.Fatalf("expected BOARD field kept, got %v", filtered.Fields)
	}
}

func TestParseHiddenAPIFlagsSkipsCommentsAndBlank(t *testing.T) {
	input := "# comment\n\nLfoo/Bar;->baz()V,public-api\n"
	flags, err := ParseHiddenAPIFlags(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}
	if len(flags) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(flags))
	}
}

func TestParseHiddenAPIFlagsRejectsMalformedLine(t *testing.T) {
	if _, err := ParseHiddenAPIFlags(strings.NewReader("no-comma-here")); err == nil {
		t.Fatal("expected error for line without a flags column")
	}
}
