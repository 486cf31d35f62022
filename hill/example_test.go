package hill_test

import (
	"fmt"

	"github.com/katalvlaran/hillcipher/hill"
	"github.com/katalvlaran/hillcipher/matrix"
)

// ExampleEngine_Encode encodes and decodes with a 2×2 key over the full alphabet.
func ExampleEngine_Encode() {
	key, _ := matrix.NewFromRows([][]int64{{3, 3}, {2, 5}})
	e := hill.New()

	ct, _ := e.Encode("HELLO!", key, 29)
	pt, _ := e.Decode(ct, key, 29)
	fmt.Println(ct)
	fmt.Println(pt)
	// Output:
	// EFITKX
	// HELLO!
}

// ExampleEngine_DecodingMatrix prints the inverse key modulo 29.
func ExampleEngine_DecodingMatrix() {
	key, _ := matrix.NewFromRows([][]int64{{3, 3}, {2, 5}})
	dec, _ := hill.New().DecodingMatrix(key, 29)
	fmt.Print(dec)
	// Output:
	// [7, 19]
	// [3, 10]
}

// ExampleSession peels two layers off one at a time.
func ExampleSession() {
	a, _ := matrix.NewFromRows([][]int64{{3, 3}, {2, 5}})
	b, _ := matrix.NewFromRows([][]int64{{1, 2}, {0, 1}})

	s := hill.NewSession(nil, "HELLO!")
	_, _ = s.Encode(a, 29)
	ct, _ := s.Encode(b, 29)
	fmt.Println(ct, s.Depth())

	for s.CanDecode() {
		txt, _ := s.Decode()
		fmt.Println(txt, s.Depth())
	}
	// Output:
	// OFRT.X 2
	// EFITKX 1
	// HELLO! 0
}
