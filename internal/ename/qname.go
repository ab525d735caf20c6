package ename

import (
	"fmt"
	"strings"
)

// QName is a lexical qualified name: an optional prefix and a local name.
// It carries no namespace binding; resolution against a Scope yields an EName.
type QName struct {
	Prefix string
	Local  string
}

// ParseQName parses the prefix:local-name lexical form.
func ParseQName(s string) (QName, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return QName{}, fmt.Errorf("invalid QName: empty string")
	}
	idx := strings.IndexByte(s, ':')
	if idx < 0 {
		return QName{Local: s}, nil
	}
	prefix, local := s[:idx], s[idx+1:]
	if prefix == "" || local == "" || strings.ContainsRune(local, ':') {
		return QName{}, fmt.Errorf("invalid QName %q", s)
	}
	return QName{Prefix: prefix, Local: local}, nil
}

// String returns the lexical form of the qualified name.
func (q QName) String() string {
	if q.Prefix == "" {
		return q.Local
	}
	return q.Prefix + ":" + q.Local
}

// HasPrefix reports whether the qualified name carries a prefix.
func (q QName) HasPrefix() bool {
	return q.Prefix != ""
}
