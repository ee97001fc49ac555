// Package hugo exports a validated site navigation as a Hugo configuration
// fragment: site title, params (description and social links) and two menus,
// "main" for the top navigation and "sidebar" for the table of contents.
package hugo
