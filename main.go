package main

import "github.com/deploymenttheory/go-pathkit/cmd"

func main() {
	cmd.Execute()
}
