// Package api embeds the HTTP contract of the service.
package api

import (
	_ "embed"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 -generate types,server -package servers -o ../internal/generated/servers/server.gen.go openapi.yml

// OpenAPI is the OpenAPI 3 document served under /api/v1.
//
//go:embed openapi.yml
var OpenAPI []byte
