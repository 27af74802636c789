// Package ui holds the on-screen controls drawn over the simulation view.
// Everything except this file requires the ebiten build tag.
package ui
