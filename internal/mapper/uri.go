// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package mapper

import (
	"fmt"
	"net/url"
	"strings"
)

// JoinURI resolves the relative path ref against base the way a browser
// resolves a relative link: ref replaces everything after the last '/'
// of the base path. ref is appended as raw text so non-ASCII characters
// are kept as they are. Absolute refs, refs with dot segments and
// unparseable bases go through net/url instead
func JoinURI(base, ref string) string {
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" {
		return base + ref
	}
	if !isPlainRelativePath(ref) {
		refURL, err := url.Parse(ref)
		if err != nil {
			return base + ref
		}
		return baseURL.ResolveReference(refURL).String()
	}
	return baseDirectory(base) + ref
}

// baseDirectory drops the query, the fragment and the last
// path segment of an absolute base, keeping the trailing '/'
func baseDirectory(base string) string {
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	pathStart := 0
	if i := strings.Index(base, "://"); i >= 0 {
		authorityStart := i + len("://")
		slash := strings.Index(base[authorityStart:], "/")
		if slash < 0 {
			return base + "/"
		}
		pathStart = authorityStart + slash
	}
	return base[:pathStart+strings.LastIndex(base[pathStart:], "/")+1]
}

func isPlainRelativePath(ref string) bool {
	if strings.HasPrefix(ref, "/") {
		return false
	}
	path, _, _ := strings.Cut(ref, "?")
	path, _, _ = strings.Cut(path, "#")
	segments := strings.Split(path, "/")
	if strings.Contains(segments[0], ":") {
		return false
	}
	for _, segment := range segments {
		if segment == "." || segment == ".." {
			return false
		}
	}
	return true
}

// Slugify turns a publisher name into a path segment by replacing
// spaces with hyphens and lower casing. Names that differ only by case
// or by space versus hyphen share a slug
func Slugify(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

// SyntheticID is the id given to a row without one; rowIndex is zero based
func SyntheticID(rowIndex int) string {
	return fmt.Sprintf("dataset-%d", rowIndex+1)
}

// DatasetURI is the IRI of the dataset with the given id
func DatasetURI(baseURI, id string) string {
	return JoinURI(baseURI, "dataset/"+id)
}

// PublisherURI is the IRI of the organization with the given name
func PublisherURI(baseURI, name string) string {
	return JoinURI(baseURI, "organization/"+Slugify(name))
}
