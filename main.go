package main

import "github.com/restaurantx/tableside/cmd"

func main() {
	cmd.Execute()
}
