package assets

import _ "embed"

// DefaultLogo is the art shown when no config overrides it.
//
//go:embed logos/default.txt
var DefaultLogo string
