// pkg/nixsearch/types.go
package nixsearch

import "log"

// Query describes a single search request
type Query struct {
	Term     string // free-text search term
	Channel  string // NixOS channel, e.g. "24.11"
	Platform string // platform filter; empty disables the filter
	Page     int    // 1-based page number
	PageSize int    // results per page, 1..MaxPageSize
}

// From returns the zero-based offset of the first result on the page
func (q Query) From() int {
	return (q.Page - 1) * q.PageSize
}

// Size returns the number of results requested per page
func (q Query) Size() int {
	return q.PageSize
}

// Package is one matched package record from the search backend
type Package struct {
	AttrName    string   // nixpkgs attribute name, e.g. "python312"
	Version     string   // upstream version, may be empty
	Description string   // short description, may be empty
	Platforms   []string // platforms the package builds for
}

// Result holds one page of hits in server-provided order
type Result struct {
	Total    int // total matches across all pages
	Packages []Package
}

// Config configures the search client
type Config struct {
	BackendURL string      // Default: DefaultBackendURL
	Username   string      // Default: the bundled read-only pair
	Password   string
	Debug      bool        // Enable debug logging
	Logger     *log.Logger // Custom logger (optional)
}
