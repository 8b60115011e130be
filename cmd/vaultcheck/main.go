package main

import (
	"os"

	"github.com/envvault/envvault.go/cmd/lib/vaultcheck"
)

func main() {
	os.Exit(vaultcheck.Run())
}
