package escape

import (
	"strconv"
	"testing"

	"github.com/msaf1980/go-stringutils"
	"github.com/stretchr/testify/assert"
)

func TestUnescape(t *testing.T) {
	var tests = []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"1%41", "1A"},
		{"1%41%42%43", "1ABC"},
		{"%4a", "J"},
		{"%6F", "o"},
		{"a+b", "a b"},
		{"a+%3D+b", "a = b"},
		{"%25", "%"},
		{"100%25", "100%"},
		{"%C3%A9", "é"},
		{"hello%20world", "hello world"},
		{"hello+world", "hello world"},
	}

	for i, tt := range tests {
		t.Run("["+strconv.Itoa(i)+"] "+tt.in, func(t *testing.T) {
			assert := assert.New(t)

			got, err := Unescape(tt.in)
			assert.NoError(err)
			assert.Equal(tt.want, got)

			var sb stringutils.Builder

			got, err = UnescapeTo(tt.in, &sb)
			assert.NoError(err)
			assert.Equal(tt.want, got)
		})
	}
}

func TestUnescapeInvalid(t *testing.T) {
	var tests = []struct {
		in      string
		wantPos int
	}{
		{"%", 0},          // not enough characters after %
		{"%a", 0},         // not enough characters after %
		{"%1", 0},         // not enough characters after %
		{"123%45%6", 6},   // not enough characters after %
		{"%zzzzz", 0},     // invalid hex digits
		{"abc%gg", 3},     // invalid hex digits
		{"ok%20bad%2", 8}, // fails even after valid escapes
	}

	for i, tt := range tests {
		t.Run("["+strconv.Itoa(i)+"] "+tt.in, func(t *testing.T) {
			assert := assert.New(t)

			got, err := Unescape(tt.in)
			assert.Equal("", got)
			assert.Error(err)

			e, ok := err.(*InvalidEscapeError)
			if assert.True(ok) {
				assert.Equal(tt.wantPos, e.Pos)
			}
		})
	}
}

func TestUnescapeToReuse(t *testing.T) {
	assert := assert.New(t)

	var sb stringutils.Builder
	first, err := UnescapeTo("a%3Db", &sb)
	assert.NoError(err)
	second, err := UnescapeTo("c%26d", &sb)
	assert.NoError(err)

	assert.Equal("a=b", first)
	assert.Equal("c&d", second)
}
