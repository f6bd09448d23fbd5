// Package branding centralizes product naming for console surfaces.
package branding

// AppName is the user-facing product name.
const AppName = "FeatStore Console"
