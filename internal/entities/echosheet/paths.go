package echosheet

import "strings"

const characterPathPrefix = "/character/"

// CharacterPath is the sheet page of a stored character
func CharacterPath(id string) string {
	return characterPathPrefix + id
}

// ParseCharacterPath extracts the ID from a "/character/{id}" path.
// Query strings, fragments and trailing segments are ignored.
func ParseCharacterPath(path string) (string, bool) {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	i := strings.Index(path, characterPathPrefix)
	if i < 0 {
		return "", false
	}
	rest := path[i+len(characterPathPrefix):]
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		rest = rest[:j]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}
