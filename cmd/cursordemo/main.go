package main

import "cursor3d/internal/demo"

func main() {
	demo.New().Run()
}
