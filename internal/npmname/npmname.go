// Package npmname checks whether a string is a valid npm package name.
//
// The rules mirror the npm registry's: names that produce Errors are never
// accepted, names that only produce Warnings were accepted in the past but
// cannot be used for new packages.
package npmname

import (
	"net/url"
	"regexp"
	"strings"
)

// MaxLength is the longest name accepted for new packages.
const MaxLength = 214

var (
	scopedPackagePattern = regexp.MustCompile(`^(?:@([^/]+?)[/])?([^/]+?)$`)
	specialChars         = regexp.MustCompile(`[~'!()*]`)
	blacklist            = []string{"node_modules", "favicon.ico"}
)

// Result is the outcome of validating a name.
type Result struct {
	ValidForNewPackages bool
	ValidForOldPackages bool
	Errors              []string
	Warnings            []string
}

// Problems returns errors followed by warnings.
func (r Result) Problems() []string {
	out := make([]string, 0, len(r.Errors)+len(r.Warnings))
	out = append(out, r.Errors...)
	return append(out, r.Warnings...)
}

// Validate applies the npm naming rules to name.
func Validate(name string) Result {
	var errs, warnings []string

	if len(name) == 0 {
		errs = append(errs, "name length must be greater than zero")
	}
	if strings.HasPrefix(name, ".") {
		errs = append(errs, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		errs = append(errs, "name cannot start with an underscore")
	}
	if strings.TrimSpace(name) != name {
		errs = append(errs, "name cannot contain leading or trailing spaces")
	}

	for _, banned := range blacklist {
		if strings.ToLower(name) == banned {
			errs = append(errs, banned+" is a blacklisted name")
		}
	}

	if isBuiltin(strings.ToLower(name)) {
		warnings = append(warnings, name+" is a core module name")
	}
	if len(name) > MaxLength {
		warnings = append(warnings, "name can no longer contain more than 214 characters")
	}
	if strings.ToLower(name) != name {
		warnings = append(warnings, "name can no longer contain capital letters")
	}

	last := name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		last = name[i+1:]
	}
	if specialChars.MatchString(last) {
		warnings = append(warnings, `name can no longer contain special characters ("~\'!()*")`)
	}

	if encodeURIComponent(name) != name {
		urlSafe := false
		// Scoped names are URL-safe when each part is.
		if m := scopedPackagePattern.FindStringSubmatch(name); m != nil && m[1] != "" {
			user, pkg := m[1], m[2]
			urlSafe = encodeURIComponent(user) == user && encodeURIComponent(pkg) == pkg
		}
		if !urlSafe {
			errs = append(errs, "name can only contain URL-friendly characters")
		}
	}

	return Result{
		ValidForNewPackages: len(errs) == 0 && len(warnings) == 0,
		ValidForOldPackages: len(errs) == 0,
		Errors:              errs,
		Warnings:            warnings,
	}
}

// encodeURIComponent escapes everything except A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	escaped = strings.ReplaceAll(escaped, "+", "%20")
	for _, keep := range []string{"!", "'", "(", ")", "*"} {
		escaped = strings.ReplaceAll(escaped, url.QueryEscape(keep), keep)
	}
	return escaped
}
