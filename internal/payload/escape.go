// Copyright 2026 The Nerdash Authors
// SPDX-License-Identifier: MIT

// Package payload escapes JSON Lines text for embedding in a JavaScript
// template literal and splices it into a dashboard document.
package payload

import "strings"

// scriptSafe keeps the payload from closing or confusing the surrounding
// <script> element. Both replacements are plain template-literal escapes.
var scriptSafe = strings.NewReplacer("</", `<\/`, "<!--", `<\!--`)

// Escape makes s safe to place verbatim between backticks. The order is
// significant: backslashes first, so that the backslashes introduced for
// backticks and "${" are not doubled again.
func Escape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "`", "\\`")
	s = strings.ReplaceAll(s, "${", `\${`)
	return scriptSafe.Replace(s)
}

// Unescape reverses Escape: every backslash takes the following character
// literally, which is also how a browser reads these sequences.
func Unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
