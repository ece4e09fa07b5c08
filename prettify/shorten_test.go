package prettify

import (
	"strings"
	"testing"

	"github.com/fqdbg/fixprint/fix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortenSymbolsScenarios(t *testing.T) {
	testCases := []struct {
		name     string
		syms     []fix.Symbol
		expected map[fix.Symbol]fix.Symbol
	}{
		{
			name: "lone symbol decays to bare prefix",
			syms: []fix.Symbol{fix.Sym("x##a3")},
			expected: map[fix.Symbol]fix.Symbol{
				fix.Sym("x##a3"): fix.Sym("x"),
			},
		},
		{
			name: "two suffixes under one prefix keep their suffixes",
			syms: []fix.Symbol{fix.Sym("x##a"), fix.Sym("x##b"), fix.Sym("y")},
			expected: map[fix.Symbol]fix.Symbol{
				fix.Sym("x##a"): fix.Sym("x##a"),
				fix.Sym("x##b"): fix.Sym("x##b"),
				fix.Sym("y"):    fix.Sym("y"),
			},
		},
		{
			name: "similar suffixes are not decorated",
			syms: []fix.Symbol{fix.Sym("x##a"), fix.Sym("x##a_dup")},
			expected: map[fix.Symbol]fix.Symbol{
				fix.Sym("x##a"):     fix.Sym("x##a"),
				fix.Sym("x##a_dup"): fix.Sym("x##a_dup"),
			},
		},
		{
			name: "suffixless symbol among suffixed ones keeps bare prefix",
			syms: []fix.Symbol{fix.Sym("x"), fix.Sym("x##a")},
			expected: map[fix.Symbol]fix.Symbol{
				fix.Sym("x"):    fix.Sym("x"),
				fix.Sym("x##a"): fix.Sym("x##a"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ShortenSymbols(tc.syms))
		})
	}
}

func TestShortenSymbolsDuplicateDisplayNames(t *testing.T) {
	// two distinct symbols that print identically, from different origins
	a := fix.Sym("x##a")
	b := fix.SymN("x##a", 1)

	renames := ShortenSymbols([]fix.Symbol{a, b})

	require.Len(t, renames, 2)
	assert.NotEqual(t, renames[a], renames[b], "decorated names are distinct")
	got := []string{renames[a].String(), renames[b].String()}
	assert.ElementsMatch(t, []string{"x##a##1", "x##a##2"}, got)
}

func TestShortenSymbolsSuffixlessDuplicates(t *testing.T) {
	a := fix.Sym("x")
	b := fix.SymN("x", 1)

	renames := ShortenSymbols([]fix.Symbol{a, b})

	got := []string{renames[a].String(), renames[b].String()}
	assert.ElementsMatch(t, []string{"x##1", "x##2"}, got, "empty suffix segment is omitted")
}

func TestShortenSymbolsSuffixSpellingAnIndex(t *testing.T) {
	// x##a##1's suffix already spells the decoration the duplicate pair would
	// mint; index assignment must skip it
	kept := fix.Sym("x##a##1")
	a := fix.Sym("x##a")
	b := fix.SymN("x##a", 1)

	renames := ShortenSymbols([]fix.Symbol{kept, a, b})

	assert.Equal(t, fix.Sym("x##a##1"), renames[kept])
	got := []string{renames[a].String(), renames[b].String()}
	assert.ElementsMatch(t, []string{"x##a##2", "x##a##3"}, got)

	seen := make(map[fix.Symbol]fix.Symbol)
	for sym, renamed := range renames {
		if prev, clash := seen[renamed]; clash {
			t.Fatalf("both %s and %s rename to %s", prev, sym, renamed)
		}
		seen[renamed] = sym
	}
}

func TestShortenSymbolsProperties(t *testing.T) {
	input := []fix.Symbol{
		fix.Sym("x##a"), fix.Sym("x##b"), fix.Sym("x##b"), // duplicate display name by interning twice is still one value
		fix.SymN("x##b", 7),
		fix.Sym("y"), fix.Sym("y##0"),
		fix.Sym("lq_anf##42"),
		fix.Sym("tmp"), fix.SymN("tmp", 1), fix.SymN("tmp", 2),
	}
	// the contract requires distinct symbols
	distinct := make(map[fix.Symbol]struct{})
	var syms []fix.Symbol
	for _, s := range input {
		if _, seen := distinct[s]; seen {
			continue
		}
		distinct[s] = struct{}{}
		syms = append(syms, s)
	}

	renames := ShortenSymbols(syms)
	require.Len(t, renames, len(syms))

	t.Run("prefix preservation", func(t *testing.T) {
		for sym, renamed := range renames {
			assert.True(t, strings.HasPrefix(renamed.String(), sym.Prefix()),
				"%s -> %s must keep prefix %s", sym, renamed, sym.Prefix())
		}
	})

	t.Run("collision freedom", func(t *testing.T) {
		seen := make(map[fix.Symbol]fix.Symbol)
		for sym, renamed := range renames {
			if prev, clash := seen[renamed]; clash {
				t.Fatalf("both %s and %s rename to %s", prev, sym, renamed)
			}
			seen[renamed] = sym
		}
	})

	t.Run("minimality", func(t *testing.T) {
		// lq_anf##42 is alone in its prefix group
		assert.Equal(t, fix.Sym("lq_anf"), renames[fix.Sym("lq_anf##42")])
	})
}
