// Package resolve maps user supplied keys (ids, name prefixes or @aliases)
// onto entities.
package resolve

import (
	"fmt"
	"strconv"
	"strings"

	"toggl-cli/internal/domain"
)

// AliasMarker prefixes keys that may be looked up in an alias table.
const AliasMarker = "@"

// Entity is anything with a numeric id and a display name.
type Entity interface {
	EntityID() int64
	EntityName() string
}

// Aliases maps short tokens such as "@a" to canonical entity names.
type Aliases map[string]string

// Expand returns the aliased name for key, or key itself when it is not an alias.
func (a Aliases) Expand(key string) string {
	if !strings.HasPrefix(key, AliasMarker) {
		return key
	}
	if name, ok := a[key]; ok {
		return name
	}
	return key
}

// KeyFor returns an alias token pointing at name. With several candidates the
// lexically smallest wins so output is stable.
func (a Aliases) KeyFor(name string) (string, bool) {
	var found string
	for k, v := range a {
		if v == name && (found == "" || k < found) {
			found = k
		}
	}
	return found, found != ""
}

// Find returns the first entity, in list order, whose id equals key or whose
// name starts with key. An id match later in the list does not beat an earlier
// name-prefix match.
func Find[E Entity](key string, entities []E, aliases Aliases) (E, error) {
	key = aliases.Expand(key)
	for _, e := range entities {
		if strconv.FormatInt(e.EntityID(), 10) == key || strings.HasPrefix(e.EntityName(), key) {
			return e, nil
		}
	}
	var zero E
	return zero, fmt.Errorf("%q: %w", key, domain.ErrNotFound)
}
