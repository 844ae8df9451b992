package main

import "github.com/hayleefay/biomusic/cmd"

func main() {
	cmd.Execute()
}
