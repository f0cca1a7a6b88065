package main

import "github.com/masmgr/gitlineage/cmd"

func main() {
	cmd.Run()
}
