package main

import "github.com/tessro/gplay/internal/cli"

func main() {
	cli.Execute()
}
