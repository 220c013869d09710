package main

import "fishing/cli"

func main() {
	cli.Execute()
}
