//go:build tinygo

package main

import (
	"bluecalc/app"
	"bluecalc/hal"
)

func main() {
	app.Run(hal.New())
}
