package main

import "github.com/casualfc/matchday/internal/cli"

func main() {
	cli.Execute()
}
