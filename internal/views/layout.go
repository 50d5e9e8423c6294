// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Page is the data shared by every page of the site.
type Page struct {
	Title string
	// Messages are one-shot flash messages shown above the content.
	Messages []string
}

// Layout wraps body into the common HTML document.
func Layout(page Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		b.WriteString("<title>" + templ.EscapeString(page.Title) + "</title>\n</head>\n<body>\n")
		if len(page.Messages) > 0 {
			b.WriteString("<ul class=\"messages\">\n")
			for _, msg := range page.Messages {
				b.WriteString("<li>" + templ.EscapeString(msg) + "</li>\n")
			}
			b.WriteString("</ul>\n")
		}
		b.WriteString("<main>\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}

		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</main>\n</body>\n</html>\n")
		return err
	})
}

// field renders a labelled input together with its validation messages.
func field(b *strings.Builder, label, name, kind, value string, errs []string) {
	b.WriteString("<p>\n<label for=\"id_" + name + "\">" + templ.EscapeString(label) + "</label>\n")
	b.WriteString("<input type=\"" + kind + "\" name=\"" + name + "\" id=\"id_" + name + "\"")
	if value != "" {
		b.WriteString(" value=\"" + templ.EscapeString(value) + "\"")
	}
	b.WriteString(" required>\n")
	errorList(b, errs)
	b.WriteString("</p>\n")
}

func errorList(b *strings.Builder, errs []string) {
	if len(errs) == 0 {
		return
	}
	b.WriteString("<ul class=\"errorlist\">\n")
	for _, e := range errs {
		b.WriteString("<li>" + templ.EscapeString(e) + "</li>\n")
	}
	b.WriteString("</ul>\n")
}
