// Package web contém a página estática servida em GET /.
package web

import _ "embed"

//go:embed index.html
var IndexHTML []byte
