// Package searchparams converts between the query-string portion of a
// URL and a map of parameter names to values.
//
// The query string is the text between '?' and '#'; both delimiters are
// the caller's business. Parse expects them already stripped, and
// Encode output is suitable for direct concatenation after a '?'.
package searchparams

import (
	"sort"
	"strings"

	"github.com/msaf1980/go-stringutils"

	"github.com/urlkit/searchparams/escape"
)

// Values maps parameter names to values. Both sides hold decoded text.
// Keys are unique; iteration order is the map's. A Values is a plain
// map and must not be mutated concurrently.
type Values map[string]string

// Get returns the value for key, or "" if the key is absent.
func (v Values) Get(key string) string {
	return v[key]
}

// Set replaces the value for key.
func (v Values) Set(key, value string) {
	v[key] = value
}

// Del removes key.
func (v Values) Del(key string) {
	delete(v, key)
}

// Has reports whether key is present. A flag-style parameter ("?debug")
// is present with an empty value.
func (v Values) Has(key string) bool {
	_, ok := v[key]
	return ok
}

// Parse decodes a query string ("a=1&b=hello%20world") into Values.
//
// Pairs are separated by '&', a pair splits on its first '='. A pair
// with no '=' keeps an empty value, empty pairs and pairs with an empty
// raw key contribute nothing. A duplicate key keeps the last value.
// The only failure is a malformed percent escape: Parse returns the
// *escape.InvalidEscapeError for the whole input, with the position
// counted from the start of the query string.
func Parse(query string) (Values, error) {
	values := make(Values)
	for base := 0; base < len(query); {
		seg := query[base:]
		if i := strings.IndexByte(seg, '&'); i >= 0 {
			seg = seg[:i]
		}
		next := base + len(seg) + 1

		rawKey, rawValue, _ := strings.Cut(seg, "=")
		if rawKey == "" {
			base = next
			continue
		}

		key, err := unescapeAt(rawKey, base)
		if err != nil {
			return nil, err
		}
		value, err := unescapeAt(rawValue, base+len(rawKey)+1)
		if err != nil {
			return nil, err
		}

		values[key] = value
		base = next
	}
	return values, nil
}

func unescapeAt(s string, offset int) (string, error) {
	t, err := escape.Unescape(s)
	if err != nil {
		if e, ok := err.(*escape.InvalidEscapeError); ok {
			e.Pos += offset
		}
		return "", err
	}
	return t, nil
}

type kv struct {
	key   string
	value string
}

// kvSlice sorts escaped pairs case-insensitively, so Encode output is
// deterministic regardless of map iteration order.
type kvSlice []kv

func (a kvSlice) Len() int      { return len(a) }
func (a kvSlice) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a kvSlice) Less(i, j int) bool {
	ki, kj := strings.ToLower(a[i].key), strings.ToLower(a[j].key)
	if ki != kj {
		return ki < kj
	}
	return strings.ToLower(a[i].value) < strings.ToLower(a[j].value)
}

// Encode builds a query string from the Values. Each key and value is
// percent-escaped independently, pairs are joined as "key=value" with
// '&' between them. An empty value keeps the trailing '=' ("key=").
// Encode never fails and its output never contains a literal '?', '#',
// '&' or '=' inside an escaped key or value.
func (v Values) Encode() string {
	if len(v) == 0 {
		return ""
	}

	arr := make(kvSlice, 0, len(v))
	size := 0
	for key, value := range v {
		p := kv{key: escape.Query(key), value: escape.Query(value)}
		size += len(p.key) + len(p.value) + 2
		arr = append(arr, p)
	}
	sort.Sort(arr)

	var sb stringutils.Builder
	sb.Grow(size)
	for i := 0; i < len(arr); i++ {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(arr[i].key)
		sb.WriteByte('=')
		sb.WriteString(arr[i].value)
	}

	return sb.String()
}
