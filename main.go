package main

import (
	"github.com/a13labs/m3ucatalog/cmd"

	_ "github.com/a13labs/m3ucatalog/cmd/catalog"
	_ "github.com/a13labs/m3ucatalog/cmd/config"
	_ "github.com/a13labs/m3ucatalog/cmd/parse"
)

func main() {
	cmd.Execute()
}
