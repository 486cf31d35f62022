// SPDX-License-Identifier: MIT

// Command hillcipher encodes and decodes messages with the Hill cipher over
// the 29-symbol alphabet (A-Z, space, '.', '!').
package main

func main() {
	Execute()
}
