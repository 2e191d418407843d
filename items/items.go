// Package items assembles the built in low poly item models out of mesh
// primitives. Each item is a compound mesh merged from tens of
// independently placed shapes, with a per-shape uniform color standing in
// for a material.
package items

import (
	"github.com/itemforge/itemforge/primitive"
)

// Item describes one generatable model. TriangleBudget is advisory: the
// generator reports the actual count against it but never fails the run.
type Item struct {
	Name           string
	TriangleBudget int
	Build          func() primitive.Mesh
}

// All returns the built in items in generation order.
func All() []Item {
	return []Item{
		{Name: "flashlight", TriangleBudget: 800, Build: Flashlight},
		{Name: "medkit", TriangleBudget: 900, Build: Medkit},
		{Name: "toolbox", TriangleBudget: 1000, Build: Toolbox},
		{Name: "map", TriangleBudget: 400, Build: MapSheet},
	}
}

// Find returns the named item, or false when it is not built in.
func Find(name string) (Item, bool) {
	for _, item := range All() {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}
