package dialect

import "strings"

// ObjectName is a table identifier split from its optional
// "database.owner.table" qualifiers.
type ObjectName struct {
	Database string
	Owner    string
	Name     string
}

// ParseObjectName splits a possibly-qualified identifier. One part is a
// bare table name, two parts are owner.table, three parts are
// database.owner.table. Bracket quoting is honored and stripped.
func ParseObjectName(qualified string) ObjectName {
	parts := splitIdentifier(qualified)
	switch len(parts) {
	case 3:
		return ObjectName{Database: parts[0], Owner: parts[1], Name: parts[2]}
	case 2:
		return ObjectName{Owner: parts[0], Name: parts[1]}
	case 1:
		return ObjectName{Name: parts[0]}
	default:
		return ObjectName{Name: qualified}
	}
}

// String reassembles the qualified name, omitting empty qualifiers.
func (o ObjectName) String() string {
	var parts []string
	if o.Database != "" {
		parts = append(parts, o.Database)
	}
	if o.Owner != "" {
		parts = append(parts, o.Owner)
	}
	parts = append(parts, o.Name)
	return strings.Join(parts, ".")
}

// splitIdentifier splits on dots outside [brackets] and strips the
// brackets from each part.
func splitIdentifier(s string) []string {
	var parts []string
	var b strings.Builder
	inBracket := false
	for _, r := range s {
		switch {
		case r == '[' && !inBracket:
			inBracket = true
		case r == ']' && inBracket:
			inBracket = false
		case r == '.' && !inBracket:
			parts = append(parts, b.String())
			b.Reset()
		default:
			b.WriteRune(r)
		}
	}
	parts = append(parts, b.String())
	return parts
}
