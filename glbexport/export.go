// Package glbexport packs a compound mesh into a single self contained
// binary glTF (.glb) file.
package glbexport

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/itemforge/itemforge/primitive"
)

// BuildDocument lays one mesh out as a single-primitive glTF document:
// buffer views in positions/normals/colors/indices order, the exact
// componentwise min/max on the position accessor, one mesh, one node, one
// default scene. Colors are emitted as a true per-vertex COLOR_0 VEC3 float
// channel; consumers moving to textured materials can ignore it.
func BuildDocument(m *primitive.Mesh, name string) *gltf.Document {
	doc := gltf.NewDocument()

	positions := make([][3]float32, m.VertexCount())
	normals := make([][3]float32, m.VertexCount())
	colors := make([][3]float32, m.VertexCount())
	for i := range m.Positions {
		positions[i] = [3]float32(m.Positions[i])
		normals[i] = [3]float32(m.Normals[i])
		colors[i] = [3]float32(m.Colors[i])
	}
	indices := make([]uint32, len(m.Indices))
	copy(indices, m.Indices)

	positionAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	colorAccessor := modeler.WriteColor(doc, colors)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: name,
		Primitives: []*gltf.Primitive{
			{
				Indices: gltf.Index(indicesAccessor),
				Attributes: map[string]uint32{
					"POSITION": positionAccessor,
					"NORMAL":   normalAccessor,
					"COLOR_0":  colorAccessor,
				},
			},
		},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))

	return doc
}

// Write serializes the mesh to path as a GLB file and returns its triangle
// count. The bytes go to a temp file in the destination directory first and
// are renamed onto path only after a successful encode, so the target is
// never left half written.
func Write(m *primitive.Mesh, name, path string) (int, error) {
	doc := BuildDocument(m, name)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0777); err != nil {
		return 0, errors.Wrapf(err, "Failed to create output directory %q", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return 0, errors.Wrapf(err, "Failed to create temp file in %q", dir)
	}

	encoder := gltf.NewEncoder(tmp)
	encoder.AsBinary = true
	if err := encoder.Encode(doc); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return 0, errors.Wrapf(err, "Failed to encode %q", name)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return 0, errors.Wrapf(err, "Failed to close temp file for %q", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return 0, errors.Wrapf(err, "Failed to move %q into place", path)
	}

	return m.TriangleCount(), nil
}
