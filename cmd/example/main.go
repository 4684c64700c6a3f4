package main

import "fmt"

// Version sets the default build version
var Version = "develop"

// Tag sets the default latest commit tag
var Tag = "0.0.1-rc"

func main() {
	fmt.Printf("labdash-service version: %s (tag %s)\n", Version, Tag)
}
