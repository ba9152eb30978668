// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package linear_test

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/gviegas/quater/linear"
)

func ExampleAxisAngle() {
	q := linear.AxisAngle(math.Pi/2, 1, 0, 0)
	fmt.Printf("%.5f\n", q.Get())
	fmt.Printf("%.5f\n", q.Len())
	// Output:
	// [0.70711 0.70711 0.00000 0.00000]
	// 1.00000
}

func ExampleQ_Mul() {
	i := linear.NewQ(0, 1, 0, 0)
	j := linear.NewQ(0, 0, 1, 0)
	fmt.Println(i.Mul(j))
	fmt.Println(j.Mul(i))
	// Output:
	// 0.000000+0.000000i+0.000000j+1.000000k
	// 0.000000+0.000000i+0.000000j-1.000000k
}

func ExampleQ_Rotate() {
	q := linear.AxisAngle(math.Pi/2, 0, 0, 1)
	v := q.Rotate(linear.V3{1, 0, 0})
	fmt.Printf("%.3f\n", v)
	// Output:
	// [0.000 1.000 0.000]
}

func ExampleQ_NormStrict() {
	q, err := linear.NewQ(0, 0, 3, 4).NormStrict()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(q)

	var zero linear.Q
	if _, err := zero.NormStrict(); errors.Is(err, linear.ErrZeroLen) {
		fmt.Println(err)
	}
	// Norm itself never fails.
	fmt.Println(zero.Norm())
	// Output:
	// 0.000000+0.000000i+0.600000j+0.800000k
	// linear: zero-length quaternion
	// 0.000000+0.000000i+0.000000j+0.000000k
}

func ExampleQ_SetAngle() {
	q := linear.AxisAngle(math.Pi/2, 0, 1, 0)
	q.SetAngle(0)
	// Only the scalar part changes.
	fmt.Printf("%.5f\n", q.Get())
	// Output:
	// [1.00000 0.00000 0.70711 0.00000]
}
