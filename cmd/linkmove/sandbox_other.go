//go:build !openbsd

package main

func sandbox() error {
	return nil
}
