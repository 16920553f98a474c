// Copyright © 2019 ZVault contributors

package main

import (
	"github.com/zvault/zvault/cmd/zvault/cmd"
)

func main() {
	cmd.Execute()
}
