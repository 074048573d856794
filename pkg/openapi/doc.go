// Package openapi loads OpenAPI documents from files, fs.FS entries or URLs
// and extracts the option lists declared on schema properties and operation
// parameters, either through the x-options extension or plain enums.
package openapi
