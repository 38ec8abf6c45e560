package main

import "github.com/aalvaropc/datasplit/internal/cli"

func main() {
	cli.Execute()
}
