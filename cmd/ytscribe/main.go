package main

import "github.com/devbush/ytscribe/internal/adapters/cli"

func main() {
	cli.Execute()
}
