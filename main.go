package main

import "github.com/solodev/pwaicons/cmd"

func main() {
	cmd.Execute()
}
