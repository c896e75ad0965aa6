package nbt

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Paths name a tag below a root.  Compound keys are joined by '.', list
// and array elements are selected with [i], and keys which are not
// simple identifiers are double quoted:
//
//	Level.Sections[3]."odd key".Y
//
// The empty path names the root.

var simpleKey = regexp.MustCompile(`^[A-Za-z0-9._+-]+$`)

// IsSimpleKey reports whether key can be written without quotes in text
// forms.
func IsSimpleKey(key string) bool {
	return simpleKey.MatchString(key)
}

// PathKey returns the path segment for key appended to parent.
func PathKey(parent, key string) string {
	seg := key
	if !IsSimpleKey(key) || strings.Contains(key, ".") {
		seg = strconv.Quote(key)
	}
	if parent == "" {
		return seg
	}
	return parent + "." + seg
}

// PathIndex returns the path of element i of parent.
func PathIndex(parent string, i int) string {
	return parent + "[" + strconv.Itoa(i) + "]"
}

// GetPath returns the tag at path below root.
func GetPath(root Tag, path string) (Tag, error) {
	cur := root
	rest := path
	for rest != "" {
		var err error
		switch {
		case rest[0] == '[':
			end := strings.IndexByte(rest, ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrFormat, path)
			}
			i, perr := strconv.Atoi(rest[1:end])
			if perr != nil {
				return nil, fmt.Errorf("%w: bad index in %q: %w", ErrFormat, path, perr)
			}
			cur, err = index(cur, i)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			rest = rest[end+1:]
		default:
			if rest[0] == '.' {
				rest = rest[1:]
			}
			var key string
			key, rest, err = cutKey(rest)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %w", ErrFormat, path, err)
			}
			c, ok := cur.(*Compound)
			if !ok {
				return nil, fmt.Errorf("%w: %q: %s is not a compound", ErrTypeMismatch, path, cur.Type())
			}
			cur = c.Get(key)
			if cur == nil {
				return nil, fmt.Errorf("%q: no key %q", path, key)
			}
		}
	}
	return cur, nil
}

func cutKey(s string) (key, rest string, err error) {
	if strings.HasPrefix(s, `"`) {
		q, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", "", err
		}
		key, err = strconv.Unquote(q)
		return key, s[len(q):], err
	}
	end := strings.IndexAny(s, ".[")
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return "", "", fmt.Errorf("empty key")
	}
	return s[:end], s[end:], nil
}

func index(t Tag, i int) (Tag, error) {
	switch x := t.(type) {
	case *List:
		return x.Get(i)
	case *ByteArray:
		v, err := x.Get(i)
		return v, err
	case *IntArray:
		v, err := x.Get(i)
		return v, err
	case *LongArray:
		v, err := x.Get(i)
		return v, err
	}
	return nil, fmt.Errorf("%w: cannot index %s", ErrTypeMismatch, t.Type())
}

// Visit calls f for t and, if f returns true, for every tag below t,
// depth first in key order.  f is called again with isPost set after the
// children of a container have been visited.
func Visit(t Tag, f func(path string, t Tag, isPost bool) (bool, error)) error {
	return visit("", t, f)
}

func visit(path string, t Tag, f func(string, Tag, bool) (bool, error)) error {
	dive, err := f(path, t, false)
	if err != nil {
		return err
	}
	if dive {
		switch x := t.(type) {
		case *Compound:
			for k, v := range x.Sorted() {
				if err := visit(PathKey(path, k), v, f); err != nil {
					return err
				}
			}
		case *List:
			for i, v := range x.All() {
				if err := visit(PathIndex(path, i), v, f); err != nil {
					return err
				}
			}
		}
	}
	_, err = f(path, t, true)
	return err
}
