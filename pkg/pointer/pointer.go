// Copyright (c) 2026 Durafone. All rights reserved.

/*
Package pointer provides utilities for working with pointers in Go.

It uses generics to simplify the creation and dereferencing of pointers,
avoiding boilerplate in the application logic. The catalog relies on it for
optional fields such as a product's previous price and discount percentage.
*/
package pointer

// To returns a pointer to the provided value.
// Useful when a struct field or function parameter expects a pointer to a literal.
func To[T any](v T) *T {
	return &v
}

// Fallback safely dereferences a pointer.
// If the pointer is nil, it returns the provided fallback value instead.
func Fallback[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
