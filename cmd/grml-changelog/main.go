package main

import "grml-changelog/internal/cli"

func main() {
	cli.Execute()
}
