package main

import (
	"github/chapool/dapp-gateway/cmd"
)

func main() {
	cmd.Execute()
}
