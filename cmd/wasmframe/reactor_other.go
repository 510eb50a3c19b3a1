//go:build !wasip1

package main

const reactor = false
