// Package netaddr is the enum-and-dispatch walkthrough: an address kind
// with two variants, switch-based routing, and lookups that return a value
// or nothing.
package netaddr

import (
	"fmt"
	"io"
)

// Kind enumerates the supported address families.
type Kind int

const (
	// V4 is an IPv4 address.
	V4 Kind = iota
	// V6 is an IPv6 address.
	V6
)

// String returns the conventional name of the kind.
func (k Kind) String() string {
	switch k {
	case V4:
		return "IPv4"
	case V6:
		return "IPv6"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Addr pairs an address kind with its textual form.
type Addr struct {
	Kind Kind
	Text string
}

// Route returns the routing decision for an address, dispatching on its
// kind.
func Route(a Addr) string {
	switch a.Kind {
	case V4:
		return fmt.Sprintf("routing %s over the v4 table", a.Text)
	case V6:
		return fmt.Sprintf("routing %s over the v6 table", a.Text)
	default:
		return fmt.Sprintf("no route for %s", a.Text)
	}
}

// Lookup resolves a host name against a static table. The second return
// distinguishes "resolved to" from "not present": a value or nothing.
func Lookup(table map[string]Addr, host string) (Addr, bool) {
	a, ok := table[host]
	return a, ok
}

// Demo prints the kind names, routes a loopback address of each family,
// and shows a present and an absent lookup.
func Demo(w io.Writer) {
	four := V4
	six := V6
	fmt.Fprintf(w, "kinds: %s and %s\n", four, six)

	home := Addr{Kind: V4, Text: "127.0.0.1"}
	loop6 := Addr{Kind: V6, Text: "::1"}
	fmt.Fprintln(w, Route(home))
	fmt.Fprintln(w, Route(loop6))

	table := map[string]Addr{
		"localhost": home,
	}
	if a, ok := Lookup(table, "localhost"); ok {
		fmt.Fprintf(w, "localhost resolved to %s (%s)\n", a.Text, a.Kind)
	}
	if _, ok := Lookup(table, "example.invalid"); !ok {
		fmt.Fprintln(w, "example.invalid did not resolve")
	}
}
