package primality_test

import (
	"fmt"

	"github.com/agbru/natcalc/internal/primality"
)

func ExampleIsPrime64() {
	fmt.Println(primality.IsPrime64(1<<61-1), primality.IsPrime64(1_050_535_501))
	// Output: true false
}

func ExampleIsPrime32() {
	fmt.Println(primality.IsPrime32(4_294_967_291))
	// Output: true
}
