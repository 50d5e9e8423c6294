// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package views holds the server-rendered HTML pages of the account forms.
//
// Every page is a [templ.Component]; handlers render them with
// [templ.Handler] or by calling Render directly. User-supplied values are
// escaped with [templ.EscapeString].
package views
