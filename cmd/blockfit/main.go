package main

import "github.com/plus3/blockfit/internal/cli"

func main() {
	cli.Execute(newPlayCmd())
}
