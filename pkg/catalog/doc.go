// Package catalog loads field option catalogs from JSON or YAML files. Each
// file maps field keys (for example "property.kind") to raw option metadata in
// any shape understood by package options; the store keeps both the raw value
// and its normalized list.
package catalog
