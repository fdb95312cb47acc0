// Package views holds the stock templ components for bloglist pages.
// Components are built with templ.ComponentFunc so no generation step is
// required; sites that want their own markup swap individual entries in
// the ViewFuncs struct.
package views

import "github.com/harlowe/bloglist"

// Default returns the stock view set.
func Default() bloglist.ViewFuncs {
	return bloglist.ViewFuncs{
		BlogList:       BlogList,
		Sidebar:        Sidebar,
		Post:           Post,
		AdminLogin:     AdminLogin,
		AdminDashboard: AdminDashboard,
		NotFound:       NotFound,
		ServerError:    ServerError,
	}
}
