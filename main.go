package main

import "devlaunch/internal/cli"

func main() {
	cli.Execute()
}
