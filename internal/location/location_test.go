package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadsSearch(t *testing.T) {
	loc, err := Parse("/?search=World")
	require.NoError(t, err)
	assert.Equal(t, "World", loc.Search())
	assert.Equal(t, "/", loc.Path)

	loc, err = Parse("https://example.com/posts?search=a%20b&page=2")
	require.NoError(t, err)
	assert.Equal(t, "a b", loc.Search())
	assert.Equal(t, "/posts?page=2&search=a+b", loc.String())
}

func TestParseAbsentSearchIsEmpty(t *testing.T) {
	loc, err := Parse("/")
	require.NoError(t, err)
	assert.Equal(t, "", loc.Search())

	var zero Location
	assert.Equal(t, "", zero.Search())
	assert.Equal(t, "/", zero.String())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("/?search=%zz")
	assert.Error(t, err)

	_, err = Parse("http://[::1")
	assert.Error(t, err)
}

func TestSearchRoundTrip(t *testing.T) {
	for _, term := range []string{"hello", "Hello World", " padded ", "a&b=c", "ünïcödé", "100%"} {
		loc := MustParse("/").WithSearch(term)
		back, err := Parse(loc.String())
		require.NoError(t, err, term)
		assert.Equal(t, term, back.Search(), "round trip of %q", term)
	}
}

func TestWithEmptySearchRemovesField(t *testing.T) {
	set := MustParse("/?search=abc&page=2")
	cleared := set.WithSearch("")

	_, present := cleared.Query[SearchKey]
	assert.False(t, present, "field must be removed, not set to empty")
	assert.Equal(t, "/?page=2", cleared.String())
	assert.True(t, cleared.Equal(MustParse("/?page=2")))

	assert.True(t, MustParse("/").WithSearch("x").WithSearch("").Equal(MustParse("/")))
}

func TestWithSearchDoesNotMutateOriginal(t *testing.T) {
	orig := MustParse("/?search=one")
	_ = orig.WithSearch("two")
	assert.Equal(t, "one", orig.Search())
}
