package main

import "github.com/cwbudde/go-wisp/cmd/wisp/cmd"

func main() {
	cmd.Main()
}
