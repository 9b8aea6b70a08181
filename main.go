package main

import "github.com/rnwolfe/sift/cmd"

func main() {
	cmd.Execute()
}
