package netaddr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "IPv4", V4.String())
	assert.Equal(t, "IPv6", V6.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name string
		addr Addr
		want string
	}{
		{"v4", Addr{Kind: V4, Text: "127.0.0.1"}, "routing 127.0.0.1 over the v4 table"},
		{"v6", Addr{Kind: V6, Text: "::1"}, "routing ::1 over the v6 table"},
		{"unknown kind", Addr{Kind: Kind(9), Text: "x"}, "no route for x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.addr))
		})
	}
}

func TestLookup(t *testing.T) {
	table := map[string]Addr{
		"localhost": {Kind: V4, Text: "127.0.0.1"},
	}

	a, ok := Lookup(table, "localhost")
	assert.True(t, ok)
	assert.Equal(t, "127.0.0.1", a.Text)

	_, ok = Lookup(table, "missing")
	assert.False(t, ok)

	_, ok = Lookup(nil, "localhost")
	assert.False(t, ok)
}

func TestDemo(t *testing.T) {
	var buf bytes.Buffer
	Demo(&buf)

	got := buf.String()
	assert.Contains(t, got, "kinds: IPv4 and IPv6")
	assert.Contains(t, got, "routing 127.0.0.1 over the v4 table")
	assert.Contains(t, got, "routing ::1 over the v6 table")
	assert.Contains(t, got, "localhost resolved to 127.0.0.1 (IPv4)")
	assert.Contains(t, got, "example.invalid did not resolve")
}
