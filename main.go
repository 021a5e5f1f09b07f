package main

import (
	"flag"
	"strings"

	"go.uber.org/fx"

	"github.com/joshuarp/passhash-api/internal/app"
)

var defaultBin string

func selectedModules(binValue string) []fx.Option {
	selected := strings.TrimSpace(strings.ToLower(binValue))

	switch selected {
	case "auth":
		return []fx.Option{
			app.AuthModule(),
		}
	case "hash":
		return []fx.Option{
			app.HashModule(),
		}
	default:
		return []fx.Option{
			app.AuthModule(),
			app.HashModule(),
		}
	}
}

func main() {
	bin := flag.String("bin", defaultBin, "select module binary: auth|hash (default: all)")
	flag.Parse()

	app.New(*bin, selectedModules(*bin)...).Run()
}
