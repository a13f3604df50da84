package main

import "github.com/PhilCANDIDO/ACM-repo/core"

func main() {
	core.StartServer()
}
