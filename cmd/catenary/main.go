package main

import "honnef.co/go/catenary/internal/cli"

func main() {
	cli.Execute()
}
