// Copyright 2020 Aleksandr Demakin. All rights reserved.

package fixpoint

import (
	"fmt"
)

type priceSize struct {
	Price, Size Value
}

func ExampleValue_Add() {
	sum, res := MustFromString("ffffffff.ffffffff").Add(Min)
	fmt.Printf("%s (%s)\n", sum, res)

	sum, res = MustFromString("-ffffffff.ffffffff").Add(Min.Neg())
	fmt.Printf("%s (%s)\n", sum, res)

	diff, res := One.Sub(MustFromString("64.0"))
	fmt.Printf("%s (%s)\n", diff, res)

	// Output:
	// 0.0 (overflow)
	// -0.0 (overflow)
	// -63.0 (ok)
}

func ExampleValue_Mul() {
	book := []priceSize{
		{MustFromString("1.4"), MustFromString("3.8")},
		{MustFromString("1.48"), MustFromString("-1.0")},
		{MustFromString("1.5"), MustFromString("2.0")},
	}
	var total Value
	for _, it := range book {
		cost, res := it.Price.Mul(it.Size)
		if !res.OK() {
			panic(res)
		}
		if total, res = total.Add(cost); !res.OK() {
			panic(res)
		}
	}
	fmt.Printf("total: %s\n", total)

	p, res := Min.Mul(Min)
	fmt.Printf("%s (%s)\n", p, res)

	p, res = MustFromString("10000.0").Mul(MustFromString("-10000.0"))
	fmt.Printf("%s (%s)\n", p, res)

	// Output:
	// total: 5.b8
	// 0.0 (underflow)
	// -0.0 (overflow)
}
