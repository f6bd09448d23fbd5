// Package module defines the contract console page modules implement so
// the app layer can mount them.
package module

import "net/http"

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by console composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
