package main

import "github.com/tradeworks/tradeworks-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
