// Command colonysim is the CLI entrypoint for the planetary colony
// simulator and site finder.
package main

import "github.com/planetarysim/colonysim/internal/adapters/cli"

func main() {
	cli.Execute()
}
