// Package site holds the static content shipped with the binary: the
// sidebar menus of each dashboard and the about page.
package site

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"alumniportal/internal/model"
)

//go:embed menus.json
var menusJSON []byte

//go:embed about.json
var aboutJSON []byte

// MenuItem is one sidebar entry.
type MenuItem struct {
	Title string `json:"title"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

// Section is a titled block of the about page.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Contact lists the association's contact details.
type Contact struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// About is the about page content.
type About struct {
	Title    string    `json:"title"`
	Mission  string    `json:"mission"`
	Sections []Section `json:"sections"`
	Contact  Contact   `json:"contact"`
}

// Content is the parsed static content.
type Content struct {
	menus map[model.Role][]MenuItem
	about About
}

// Load parses the embedded files.
func Load() (*Content, error) {
	var c Content
	if err := json.Unmarshal(menusJSON, &c.menus); err != nil {
		return nil, fmt.Errorf("parse menus: %w", err)
	}
	for role := range c.menus {
		if _, ok := model.ParseRole(string(role)); !ok {
			return nil, fmt.Errorf("parse menus: unknown role %q", role)
		}
	}
	if err := json.Unmarshal(aboutJSON, &c.about); err != nil {
		return nil, fmt.Errorf("parse about: %w", err)
	}
	return &c, nil
}

// Menu returns the sidebar of role, or an empty menu for unknown roles.
func (c *Content) Menu(role model.Role) []MenuItem {
	items, ok := c.menus[role]
	if !ok {
		return []MenuItem{}
	}
	return items
}

// About returns the about page content.
func (c *Content) About() About {
	return c.about
}
