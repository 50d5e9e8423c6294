// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// RegisterForm is the state of the registration form.
type RegisterForm struct {
	Username string
	// Errors maps a form field to its messages.
	Errors map[string][]string
}

// Register renders the registration page.
func Register(form RegisterForm, messages []string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Register</h1>\n<form method=\"post\" action=\"/register/\">\n")
		field(&b, "Username", "username", "text", form.Username, form.Errors["username"])
		field(&b, "Password", "password1", "password", "", form.Errors["password1"])
		field(&b, "Password confirmation", "password2", "password", "", form.Errors["password2"])
		b.WriteString("<button type=\"submit\">Register</button>\n</form>\n")
		b.WriteString("<p>Already have an account? <a href=\"/login/\">Log in</a></p>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})

	return Layout(Page{Title: "Register", Messages: messages}, body)
}

// LoginForm is the state of the login form.
type LoginForm struct {
	Username string
	// Next is the path to redirect to after a successful login.
	Next  string
	Error string
}

// Login renders the login page.
func Login(form LoginForm, messages []string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Log in</h1>\n")
		if form.Error != "" {
			b.WriteString("<p class=\"error\">" + templ.EscapeString(form.Error) + "</p>\n")
		}
		b.WriteString("<form method=\"post\" action=\"/login/\">\n")
		if form.Next != "" {
			b.WriteString("<input type=\"hidden\" name=\"next\" value=\"" + templ.EscapeString(form.Next) + "\">\n")
		}
		field(&b, "Username", "username", "text", form.Username, nil)
		field(&b, "Password", "password", "password", "", nil)
		b.WriteString("<button type=\"submit\">Log in</button>\n</form>\n")
		b.WriteString("<p>No account yet? <a href=\"/register/\">Register</a></p>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})

	return Layout(Page{Title: "Log in", Messages: messages}, body)
}

// Home renders the landing page of a logged-in user.
func Home(username string, messages []string) templ.Component {
	body := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<h1>Welcome, " + templ.EscapeString(username) + "!</h1>\n")
		b.WriteString("<form method=\"post\" action=\"/logout/\">\n<button type=\"submit\">Log out</button>\n</form>\n")
		_, err := io.WriteString(w, b.String())
		return err
	})

	return Layout(Page{Title: "Home", Messages: messages}, body)
}
