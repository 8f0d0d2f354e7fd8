package main

import "github.com/mfisher87/mystmd-plugin-listing/cmd"

func main() {
	cmd.Execute()
}
