// Package swagger serves the careerlens OpenAPI document and a ReDoc page.
package swagger

import _ "embed"

// OpenAPI is the raw openapi.yaml shipped with the binary.
//
//go:embed openapi.yaml
var OpenAPI []byte
