//go:build !cgo
// +build !cgo

package main

import "fmt"

func main() {
	fmt.Println("sematrope requires cgo and a Z3 installation. Enable CGO_ENABLED=1, install Z3, and rebuild.")
}
