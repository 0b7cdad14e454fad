package main

import (
	"github.com/airenas/workopt/internal/app/optimizecli"
)

func main() {
	optimizecli.Execute()
}
