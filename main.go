package main

import (
	"bhaalingual/cli"
)

func main() {
	cli.Start()
}
