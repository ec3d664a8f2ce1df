package main

import (
	"github.com/pgdelta/pgdelta/lib"
)

func main() {
	app := lib.NewPgDelta()
	app.ArgParse()
	app.Notice("Done")
}
