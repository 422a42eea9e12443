// main is the entry point for the gradebook CLI.
package main

import (
	"github.com/huangsam/gradebook/cmd"
	"github.com/huangsam/gradebook/internal/contract"
	"github.com/huangsam/gradebook/internal/iostore"
)

func main() {
	defer iostore.CloseStores()
	cmd.SetStoreManager(iostore.Manager)

	if err := cmd.Execute(); err != nil {
		iostore.CloseStores() // LogFatal exits before defers run
		contract.LogFatal("Error", err)
	}
}
