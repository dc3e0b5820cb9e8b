// Package main provides the entry point for the buddy CLI.
package main

import "github.com/raphaelgruber/beingbuddy-go/internal/cli"

func main() {
	cli.Execute()
}
