package main

import "gomix/cmd"

func main() {
	cmd.Execute()
}
