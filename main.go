package main

import "github.com/padaria-criativa/catalog/cmd"

func main() {
	cmd.Execute()
}
