package main

import (
	"github/chapool/wallet-sdk/cmd"
)

func main() {
	cmd.Execute()
}
