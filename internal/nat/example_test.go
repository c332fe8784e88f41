package nat_test

import (
	"fmt"

	"github.com/agbru/natcalc/internal/nat"
)

func ExampleDivMod() {
	n := nat.FromUint64(1_000_000_000_001)
	q, r := nat.DivMod(n, nat.FromUint64(7))
	fmt.Println(q, r)
	// Output: 142857142857 2
}

func ExampleAdd() {
	x := nat.FromWords([]nat.Word{^nat.Word(0)})
	sum := nat.Add(x, nat.FromUint64(1))
	fmt.Println(len(sum), sum.Words())
	// Output: 2 [0 1]
}

func ExampleSub() {
	_, borrow := nat.Sub(nat.FromUint64(3), nat.FromUint64(5))
	fmt.Println(borrow)
	// Output: true
}

func ExampleInvertLimb64() {
	fmt.Printf("%#x\n", nat.InvertLimb64(1<<63))
	// Output: 0xffffffffffffffff
}

func ExampleDivRemWord() {
	u := []nat.Word{100}
	q := make([]nat.Word, 1)
	r := nat.DivRemWord(q, u, 7)
	fmt.Println(q[0], r)
	// Output: 14 2
}
