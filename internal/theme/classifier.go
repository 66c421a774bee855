// Copyright 2025 Lincoln Institute of Land Policy
// SPDX-License-Identifier: Apache-2.0

package theme

import (
	"strings"

	"github.com/internetofwater/healthdcat/internal/vocabulary"
)

// DefaultCode is used for any theme that is not in the lookup table
const DefaultCode = "HEAL"

// free text theme labels mapped to EU data theme codes
var themeCodes = map[string]string{
	"HEALTH":      "HEAL",
	"HEAL":        "HEAL",
	"MEDICINE":    "HEAL",
	"SCIENCE":     "SCIE",
	"EDUCATION":   "EDUC",
	"ENVIRONMENT": "ENVI",
	"TECHNOLOGY":  "TECH",
}

// Code returns the data theme code for a theme label. Matching is exact
// after upper casing; anything else, including the empty string, is
// the default code
func Code(label string) string {
	if code, ok := themeCodes[strings.ToUpper(label)]; ok {
		return code
	}
	return DefaultCode
}

// Classify maps a free text theme label to the IRI of its
// controlled vocabulary concept
func Classify(label string) string {
	return vocabulary.DataThemeAuthority + "/" + Code(label)
}
