package main

import "github.com/scrobl/vinyl/internal/cli"

func main() {
	cli.Execute()
}
