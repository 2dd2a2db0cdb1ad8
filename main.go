package main

import "github.com/ambler289/ada-ui/internal/cmd"

func main() {
	cmd.Execute()
}
