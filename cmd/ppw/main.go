package main

import "ppw/cmd/ppw/cmd"

func main() {
	cmd.Execute()
}
