// constants.go
package nixsearch

const (
	// DefaultBackendURL is the Elasticsearch proxy behind search.nixos.org
	DefaultBackendURL = "https://search.nixos.org/backend"

	// indexPrefix is prepended to the channel to form the index name,
	// e.g. "latest-42-nixos-24.11"
	indexPrefix = "latest-42-nixos-"

	// Public read-only credentials bundled with the search.nixos.org
	// frontend. Not a secret; the website ships the same pair in its
	// bundle.js.
	defaultUsername = "aWVSALXpZv"
	defaultPassword = "X8gPHnzL52wFEekuxsfQ9cSh"

	// MaxPageSize is the largest page the backend will serve
	MaxPageSize = 50
)

// IndexFor returns the Elasticsearch index name for a channel
func IndexFor(channel string) string {
	return indexPrefix + channel
}
