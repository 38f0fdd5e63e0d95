package serialize

import (
	"errors"
	"fmt"
	"strings"
)

// Tag names the semantic type of a field value and selects its formatter.
type Tag string

const (
	TagString       Tag = "str"
	TagBool         Tag = "bool"
	TagTimestamp    Tag = "timestamp"
	TagDuration     Tag = "duration"
	TagNumber       Tag = "number"
	TagHashedSecret Tag = "sha256"
	TagPassword     Tag = "password"
	TagURL          Tag = "url"
	TagVar          Tag = "var"
)

// ErrUnknownTag is returned when no formatter is registered for a tag.
var ErrUnknownTag = errors.New("unknown field type")

var allTags = []Tag{
	TagString,
	TagBool,
	TagTimestamp,
	TagDuration,
	TagNumber,
	TagHashedSecret,
	TagPassword,
	TagURL,
	TagVar,
}

var tagAliases = map[string]Tag{
	"string":        TagString,
	"boolean":       TagBool,
	"hashed-secret": TagHashedSecret,
	"hashedsecret":  TagHashedSecret,
	"generic":       TagVar,
}

// ParseTag accepts the short tag names used in field documents as well as
// their long spellings ("string", "boolean", "hashed-secret", "generic").
func ParseTag(s string) (Tag, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, t := range allTags {
		if string(t) == name {
			return t, nil
		}
	}
	if t, ok := tagAliases[name]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTag, s)
}

func (t Tag) String() string {
	return string(t)
}

// Value is a raw field value paired with the tag that decides how it renders.
type Value struct {
	Tag Tag
	Raw any
}
