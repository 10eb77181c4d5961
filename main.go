package main

import "github.com/user/linkman/cmd"

func main() {
	cmd.Execute()
}
