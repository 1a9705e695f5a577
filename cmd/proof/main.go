// Copyright 2021 Goran Devic. All rights reserved.

// Command proof drives the fixed and randomized test vector sets
// through calc and prints the OK/NEAR/FAIL tally, matching the shape
// of Proof.cpp's main(). It is the ambient CLI surface explicitly
// placed out of the core's scope; the core never imports it.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdevic/CalculatorOneProof/proof"
	"github.com/gdevic/CalculatorOneProof/testvector"
)

var (
	seed    = flag.Uint("seed", 43, "LCG seed for randomized vector generation")
	vectors = flag.Int("vectors", 500, "number of randomized vectors per operation")
	op      = flag.String("op", "all", "operation to run: add, mult, div, or all")
)

func main() {
	flag.Parse()

	var sum proof.Summary
	for _, name := range operations(*op) {
		runOne(name, uint32(*seed), *vectors, &sum)
	}

	fmt.Printf("Total tests: %d  fail: %d  rounding errors: %d\n", sum.Total, sum.Fail, sum.Near)
	if sum.Fail > 0 {
		os.Exit(1)
	}
}

func operations(name string) []string {
	if name == "all" {
		return []string{"add", "mult", "div"}
	}
	return []string{name}
}

func runOne(name string, seed uint32, n int, sum *proof.Summary) {
	switch name {
	case "add":
		table := testvector.NonExponentialVectors
		v := append(testvector.SignPermutations(table, true),
			testvector.RandomVectors(testvector.NewLCG(seed), table, n, true)...)
		proof.RunAddSub(v, sum)
	case "mult":
		table := testvector.NonExponentialVectors
		v := append(testvector.SignPermutations(table, false),
			testvector.RandomVectors(testvector.NewLCG(seed), table, n, false)...)
		proof.RunMult(v, sum)
	case "div":
		table := testvector.DivisionVectors
		v := append(testvector.SignPermutations(table, false),
			testvector.RandomVectors(testvector.NewLCG(seed), table, n, false)...)
		proof.RunDiv(v, sum)
	default:
		fmt.Fprintf(os.Stderr, "proof: unknown -op %q\n", name)
		os.Exit(2)
	}
}
