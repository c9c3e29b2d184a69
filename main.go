package main

import "github.com/notargets/movingband/cmd"

func main() {
	cmd.Execute()
}
