package main

import "github.com/junkd0g/labchart/internal/cli"

func main() {
	cli.Execute()
}
