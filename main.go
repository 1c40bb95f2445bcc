// Package main is the entry point for the bootswap CLI.
package main

import "bootswap.dev/pkg/bootswap/cmd"

func main() {
	cmd.Execute()
}
