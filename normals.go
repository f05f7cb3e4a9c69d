package cloth

import "github.com/ungerik/go3d/float64/vec3"

// UpdateNormals recomputes every face normal from the face's first three
// vertices and sets each vertex normal to the unit average of the normals
// of the faces using it. A vertex no face uses gets the zero vector.
func (mesh *Mesh) UpdateNormals() {
	if len(mesh.normals) != len(mesh.vertices) {
		mesh.normals = make([]vec3.T, len(mesh.vertices))
	}
	for i := range mesh.vertices {
		mesh.vertices[i].faceCount = 0
		mesh.normals[i] = vec3.Zero
	}

	for f := range mesh.faces {
		face := &mesh.faces[f]
		face.Normal = mesh.faceNormal(face)
		if !face.Valid() {
			continue
		}

		for _, i := range face.Indices {
			mesh.normals[i].Add(&face.Normal)
			mesh.vertices[i].faceCount++
		}
	}

	for i := range mesh.vertices {
		count := mesh.vertices[i].faceCount
		if count == 0 {
			continue
		}
		mesh.normals[i].Scale(1 / float64(count)).Normalize()
	}
}

func (mesh *Mesh) faceNormal(face *Face) vec3.T {
	if !face.Valid() {
		return vec3.Zero
	}

	v0 := &mesh.vertices[face.Indices[0]].Position
	v1 := &mesh.vertices[face.Indices[1]].Position
	v2 := &mesh.vertices[face.Indices[2]].Position

	e1 := vec3.Sub(v1, v0)
	e2 := vec3.Sub(v2, v0)
	e1.Normalize()
	e2.Normalize()
	n := vec3.Cross(&e1, &e2)
	return *n.Normalize()
}
