package folio

import (
	"net/url"
	"path"
)

// BuildURL joins a base URL with path segments. Routes are registered
// without trailing slashes, so none is appended.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	return u.String()
}
