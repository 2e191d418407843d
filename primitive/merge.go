package primitive

// Merge concatenates meshes into one compound mesh in call order. Vertex
// arrays are appended as-is; each contributor's indices are rebased by the
// running vertex count, so no triangle ever spans two contributors.
// Merging nothing yields an empty mesh.
func Merge(meshes ...Mesh) Mesh {
	var out Mesh
	for _, m := range meshes {
		offset := uint32(out.VertexCount())
		out.Positions = append(out.Positions, m.Positions...)
		out.Normals = append(out.Normals, m.Normals...)
		out.Colors = append(out.Colors, m.Colors...)
		for _, index := range m.Indices {
			out.Indices = append(out.Indices, index+offset)
		}
	}
	return out
}
