package main

import "github.com/tanviarora/aurum/internal/cmd"

func main() {
	cmd.Execute()
}
