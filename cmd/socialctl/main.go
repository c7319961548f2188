package main

import "mediasocial/cmd/socialctl/commands"

func main() {
	commands.Execute()
}
