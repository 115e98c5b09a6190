// Package exercise holds the compound-types drills: arrays, pairs,
// pointers, slices, string building, fizzbuzz, a generic pick, numeric
// widening, and a 3x3 matrix transpose.
package exercise

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ArrayAssign fills a fixed-size array with one value, zeroes the middle
// element and prints the result.
func ArrayAssign(w io.Writer) {
	var a [10]int8
	for i := range a {
		a[i] = 42
	}
	a[5] = 0
	fmt.Fprintf(w, "a: %v\n", a)
}

// Pair is a small heterogeneous pair, the struct stand-in for a tuple.
type Pair struct {
	N int8
	B bool
}

// PairDemo prints the two fields of a pair.
func PairDemo(w io.Writer) {
	t := Pair{N: 7, B: true}
	fmt.Fprintf(w, "1st field: %d\n", t.N)
	fmt.Fprintf(w, "2nd field: %t\n", t.B)
}

// PointerDemo writes through a pointer and shows the pointee change.
func PointerDemo(w io.Writer) {
	x := 10
	p := &x
	*p = 20
	fmt.Fprintf(w, "x: %d\n", x)
}

// SliceDemo takes a view into the middle of an array. The slice borrows
// the array's backing storage.
func SliceDemo(w io.Writer) {
	a := [6]int{10, 20, 30, 40, 50, 60}
	fmt.Fprintf(w, "a: %v\n", a)

	s := a[2:4]
	fmt.Fprintf(w, "s: %v\n", s)
}

// StringDemo contrasts an immutable string constant with a growable
// builder.
func StringDemo(w io.Writer) {
	s1 := "Hello"
	fmt.Fprintf(w, "s1: %s\n", s1)

	var s2 strings.Builder
	s2.WriteString("Hello ")
	fmt.Fprintf(w, "s2: %s\n", s2.String())
	s2.WriteString(s1)
	fmt.Fprintf(w, "s2: %s\n", s2.String())
}

// IsDivisibleBy reports whether lhs divides evenly by rhs. Division by
// zero is defined as false.
func IsDivisibleBy(lhs, rhs uint) bool {
	if rhs == 0 {
		return false
	}
	return lhs%rhs == 0
}

// FizzBuzz returns the fizzbuzz word for n.
func FizzBuzz(n uint) string {
	by3 := IsDivisibleBy(n, 3)
	by5 := IsDivisibleBy(n, 5)
	switch {
	case by3 && by5:
		return "fizzbuzz"
	case by3:
		return "fizz"
	case by5:
		return "buzz"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// FizzBuzzTo prints fizzbuzz for 1 through n inclusive.
func FizzBuzzTo(w io.Writer, n uint) {
	for i := uint(1); i <= n; i++ {
		fmt.Fprintln(w, FizzBuzz(i))
	}
}

// PickOne returns one of its two arguments, chosen by the parity of the
// process id. Same signature for any type, one implementation.
func PickOne[T any](a, b T) T {
	if os.Getpid()%2 == 0 {
		return a
	}
	return b
}

// Widen multiplies two 16-bit values. Callers with narrower operands must
// convert explicitly; nothing widens implicitly.
func Widen(x, y int16) int16 {
	return x * y
}

// WidenDemo converts an 8-bit value up to 16 bits before multiplying.
func WidenDemo(w io.Writer) {
	var x int8 = 15
	var y int16 = 1000
	fmt.Fprintf(w, "%d * %d = %d\n", x, y, Widen(int16(x), y))
}

// Matrix is a fixed 3x3 integer matrix.
type Matrix [3][3]int

// Transpose returns the matrix flipped across its diagonal.
func Transpose(m Matrix) Matrix {
	var out Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// PrettyPrint writes the matrix one bracketed row per line.
func PrettyPrint(w io.Writer, m Matrix) {
	for _, row := range m {
		fmt.Fprintf(w, " %v\n", row)
	}
}

// MatrixDemo prints a matrix and its transpose.
func MatrixDemo(w io.Writer) {
	m := Matrix{
		{101, 102, 103},
		{201, 202, 203},
		{301, 302, 303},
	}

	fmt.Fprintln(w, "matrix:")
	PrettyPrint(w, m)

	fmt.Fprintln(w, "transposed:")
	PrettyPrint(w, Transpose(m))
}
