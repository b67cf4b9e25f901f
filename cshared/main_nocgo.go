//go:build !cgo

// cshared/main_nocgo.go
//
// Linkable stand-in for builds with cgo disabled. The C entry points in
// main.go exist only under cgo, which would leave this main package
// without a main symbol and break a plain `go build ./...` when
// CGO_ENABLED=0. The shared library itself is always built with cgo
// (see main.go); this stub mirrors its empty main and nothing else.
package main

func main() {}
