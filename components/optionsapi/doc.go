// Package optionsapi exposes normalized field options over net/http so form
// inputs can fetch, search and group them at runtime.
//
// The default handler responds to GET and HEAD requests on /api/options and
// reads the field key, a search query, a limit and a grouped flag from the
// query string. Options come from a Provider, typically a *catalog.Store.
package optionsapi
