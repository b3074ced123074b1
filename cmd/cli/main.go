package main

import "github.com/jkorhonen/rinkroster/internal/cli"

func main() {
	cli.Execute()
}
