package main

import "adcheck/internal/cli"

func main() {
	cli.Execute()
}
