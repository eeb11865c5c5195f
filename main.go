package main

import (
	"os"

	"github.com/siyuan-infoblox/order-imports/pkg/cmd"
	"github.com/siyuan-infoblox/order-imports/pkg/version"
)

func main() {
	if err := cmd.Execute(version.Get()); err != nil {
		os.Exit(1)
	}
}
