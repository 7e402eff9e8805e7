// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// IDFn maps a zero-based member index to a vertex ID. It must be pure.
// Implementations panic on a negative index: that is a constructor bug.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	mustIndex("DefaultIDFn", idx)

	return strconv.Itoa(idx)
}

// LetterIDFn names members like spreadsheet columns: 0→"A", 25→"Z",
// 26→"AA", 702→"AAA". Small fixtures read as A, B, C.
func LetterIDFn(idx int) string {
	mustIndex("LetterIDFn", idx)

	var buf []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		buf = append(buf, byte('A'+i%26))
	}
	for l, r := 0, len(buf)-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}

	return string(buf)
}

// SymbolNumberIDFn returns prefix followed by the decimal index.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustIndex("SymbolNumberIDFn", idx)

		return prefix + strconv.Itoa(idx)
	}
}

// PersonIDFn returns "p0", "p1", ...
func PersonIDFn(idx int) string {
	return SymbolNumberIDFn("p")(idx)
}

// idSchemes lists the schemes selectable by name.
var idSchemes = map[string]IDFn{
	"default": DefaultIDFn,
	"letters": LetterIDFn,
	"person":  PersonIDFn,
}

// IDSchemeNames returns the names accepted by ParseIDScheme, sorted.
func IDSchemeNames() []string {
	names := make([]string, 0, len(idSchemes))
	for name := range idSchemes {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// ParseIDScheme resolves a scheme name case-insensitively. The empty name is
// the default scheme.
func ParseIDScheme(name string) (IDFn, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return DefaultIDFn, nil
	}
	fn, ok := idSchemes[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want one of %s)",
			ErrUnknownIDScheme, name, strings.Join(IDSchemeNames(), ", "))
	}

	return fn, nil
}

// WithLetterIDs selects LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

func mustIndex(fn string, idx int) {
	if idx < 0 {
		panic(fmt.Sprintf("%s: idx must be >= 0, got %d", fn, idx))
	}
}
