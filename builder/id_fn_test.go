package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/builder"
)

func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		fn    builder.IDFn
		input int
		want  string
	}{
		{"default/zero", builder.DefaultIDFn, 0, "0"},
		{"default/multi", builder.DefaultIDFn, 123, "123"},
		{"letters/first", builder.LetterIDFn, 0, "A"},
		{"letters/last single", builder.LetterIDFn, 25, "Z"},
		{"letters/first double", builder.LetterIDFn, 26, "AA"},
		{"letters/ZZ", builder.LetterIDFn, 701, "ZZ"},
		{"letters/AAA", builder.LetterIDFn, 702, "AAA"},
		{"person/zero", builder.PersonIDFn, 0, "p0"},
		{"person/multi", builder.PersonIDFn, 17, "p17"},
		{"prefix", builder.SymbolNumberIDFn("fan"), 3, "fan3"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

func TestIDFns_NegativeIndexPanics(t *testing.T) {
	for name, fn := range map[string]builder.IDFn{
		"default": builder.DefaultIDFn,
		"letters": builder.LetterIDFn,
		"person":  builder.PersonIDFn,
	} {
		assert.Panics(t, func() { fn(-1) }, name)
	}
}

func TestParseIDScheme(t *testing.T) {
	assert.Equal(t, []string{"default", "letters", "person"}, builder.IDSchemeNames())

	for _, tc := range []struct {
		name string
		want string
	}{
		{"", "4"},
		{"default", "4"},
		{"Letters", "E"},
		{" person ", "p4"},
	} {
		fn, err := builder.ParseIDScheme(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.want, fn(4), tc.name)
	}

	_, err := builder.ParseIDScheme("roman")
	assert.ErrorIs(t, err, builder.ErrUnknownIDScheme)
}
