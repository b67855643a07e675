package main

import "github.com/dbsmedya/storegen/cmd/storegen/cmd"

func main() {
	cmd.Execute()
}
