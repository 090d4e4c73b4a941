package main

import "github.com/fredyGabriel/base-tanque/cmd"

func main() {
	cmd.Execute()
}
