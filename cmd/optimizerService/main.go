package main

import (
	"github.com/airenas/workopt/internal/app/optimize"
	"github.com/labstack/gommon/color"
)

func main() {
	printBanner()
	optimize.Execute()
}

var (
	version string
)

func printBanner() {
	banner := `
                    __                  __
 _      ______  _____/ /______  ____  / /_
| | /| / / __ \/ ___/ //_/ __ \/ __ \/ __/
| |/ |/ / /_/ / /  / ,< / /_/ / /_/ / /_
|__/|__/\____/_/  /_/|_|\____/ .___/\__/  v: %s
                            /_/
%s
________________________________________________________

`
	cl := color.New()
	cl.Printf(banner, cl.Red(version), cl.Green("github.com/airenas/workopt"))
}
