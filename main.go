package main

import "aeroclub-backend/cmd"

func main() {
	cmd.Run()
}
