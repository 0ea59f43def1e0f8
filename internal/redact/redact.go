// Copyright 2026 The Schemedash Authors
// SPDX-License-Identifier: MIT

// Package redact strips credentials from strings before they appear in
// output, logs, or error messages. Data source URLs are user-supplied and
// may carry basic-auth userinfo or signed query parameters.
package redact

import "regexp"

var (
	// userinfoRe matches "scheme://user[:pass]@" in any URL.
	userinfoRe = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)[^/\s@]+@`)

	// secretParamRe matches the value of query parameters that commonly carry
	// credentials.
	secretParamRe = regexp.MustCompile(`(?i)([?&](?:token|access_token|key|api_key|apikey|sig|signature|password)=)[^&\s"']+`)
)

// Placeholder replaces every redacted value.
const Placeholder = "[REDACTED]"

// String replaces URL userinfo and credential-bearing query values in s with
// Placeholder. Strings without credentials are returned unchanged.
func String(s string) string {
	s = userinfoRe.ReplaceAllString(s, "${1}"+Placeholder+"@")
	s = secretParamRe.ReplaceAllString(s, "${1}"+Placeholder)
	return s
}
