package renderer

import "embed"

// templates holds the text reports. Each one is executed with the report struct as data.
//
//go:embed *.txt
var templates embed.FS
