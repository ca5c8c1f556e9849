package main

import "github.com/aalvaropc/aocinput/internal/cli"

func main() {
	cli.Execute()
}
