package schiphol

import (
	"net/http"
	"strings"
)

// The public API advertises pagination links with a literal placeholder
// authority instead of its real hostname.
const placeholderAuthority = "protocol://server_address:port"

// NextPageURL extracts the "next" pagination link from a response's Link
// header and resolves it to an absolute URL on the given API root (scheme +
// authority, no trailing slash). It returns "" when no next page exists;
// malformed headers never produce an error, just "".
func NextPageURL(header http.Header, apiRoot string) string {
	link := header.Get("Link")
	if link == "" {
		return ""
	}

	for _, part := range strings.Split(link, ",") {
		if !strings.Contains(part, `rel="next"`) {
			continue
		}

		start := strings.Index(part, "<")
		end := strings.Index(part, ">")
		if start < 0 || end < 0 || end <= start+1 {
			continue
		}
		next := part[start+1 : end]

		// Resolve placeholder and root-relative forms against the real API
		if strings.Contains(next, placeholderAuthority) {
			next = strings.Replace(next, placeholderAuthority, apiRoot, 1)
		} else if strings.HasPrefix(next, "/") {
			next = apiRoot + next
		}

		// First "next" entry wins
		return next
	}

	return ""
}
