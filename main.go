package main

import "github.com/jcdickinson/kolbendoc/cmd"

func main() {
	cmd.Execute()
}
