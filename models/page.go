// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LastPage selects the final page of a listing, whatever its number.
const LastPage = -1

// PageRequest selects one page of an ordered listing. Page is 1-based or
// LastPage.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows preceding the requested page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// UserPage is one page of users plus the total number of users.
type UserPage struct {
	Users    []User
	Count    int
	Page     int
	PageSize int
}

// NumPages returns the number of pages the listing spans. An empty listing
// still has one (empty) page.
func (p UserPage) NumPages() int {
	if p.Count == 0 || p.PageSize <= 0 {
		return 1
	}
	return (p.Count + p.PageSize - 1) / p.PageSize
}

// HasNext reports whether a page follows this one.
func (p UserPage) HasNext() bool {
	return p.Page < p.NumPages()
}

// HasPrevious reports whether a page precedes this one.
func (p UserPage) HasPrevious() bool {
	return p.Page > 1
}

// UserList is one page of the users API as seen by a client.
type UserList struct {
	Count    int
	Next     string
	Previous string
	Users    []User
	// Token is the refresh token the server issued alongside the listing.
	Token string
}
