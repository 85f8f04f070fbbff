package main

import "learninghub/cmd/client/cmd"

func main() {
	cmd.Execute()
}
