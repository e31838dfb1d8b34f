package accounts

import (
	"regexp"
	"strings"
)

// Sep separates the components of an account name.
const Sep = ":"

var (
	rootRe      = regexp.MustCompile(`^\p{Lu}[\p{L}\p{Nd}-]*$`)
	componentRe = regexp.MustCompile(`^[\p{Lu}\p{Nd}][\p{L}\p{Nd}-]*$`)
)

// Join builds an account name from components.
func Join(components ...string) string {
	return strings.Join(components, Sep)
}

// Split returns the components of an account name.
func Split(name string) []string {
	return strings.Split(name, Sep)
}

// Root returns the first component of name.
// "Assets:CA:RBC:Checking" -> "Assets"
func Root(name string) string {
	root, _, _ := strings.Cut(name, Sep)
	return root
}

// Leaf returns the last component of name.
func Leaf(name string) string {
	if i := strings.LastIndex(name, Sep); i >= 0 {
		return name[i+len(Sep):]
	}
	return name
}

// Parent returns name without its last component, or "" for a root.
func Parent(name string) string {
	if i := strings.LastIndex(name, Sep); i >= 0 {
		return name[:i]
	}
	return ""
}

// IsValidRoot reports whether s can be used as an account root.
func IsValidRoot(s string) bool {
	return rootRe.MatchString(s)
}

// IsValidComponent reports whether s can appear below a root.
func IsValidComponent(s string) bool {
	return componentRe.MatchString(s)
}

// IsValidSubName reports whether s is one or more valid non-root
// components joined by Sep, e.g. "Earnings:Previous".
func IsValidSubName(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range Split(s) {
		if !IsValidComponent(c) {
			return false
		}
	}
	return true
}
