package cloth

import "github.com/ungerik/go3d/float64/vec3"

// AddAcceleration accumulates an acceleration applied to every unpinned
// vertex on the next Integrate.
func (mesh *Mesh) AddAcceleration(a vec3.T) {
	mesh.acceleration.Add(&a)
}

// Acceleration returns the acceleration accumulated for the next tick.
func (mesh *Mesh) Acceleration() vec3.T {
	return mesh.acceleration
}

// Integrate moves every unpinned vertex by its damped velocity plus gravity
// and the accumulated acceleration, then clears the accumulator. A vertex
// that would go below the floor at y = 0 keeps its previous height.
func (mesh *Mesh) Integrate() {
	accel := vec3.Add(&mesh.Gravity, &mesh.acceleration)
	keep := 1 - mesh.Damping

	for i := range mesh.vertices {
		v := &mesh.vertices[i]
		if v.Pinned {
			continue
		}

		next := vec3.Sub(&v.Position, &v.Previous)
		next.Scale(keep).Add(&v.Position).Add(&accel)

		// floor
		if next[1] < 0 {
			next[1] = v.Position[1]
		}

		v.Previous = v.Position
		v.Position = next
	}

	mesh.acceleration = vec3.Zero
}

// Relax pulls every link toward its rest length. Each of the Iterations
// passes corrects the links one after another, so a link sees the
// corrections made by the links before it.
func (mesh *Mesh) Relax() {
	for i := 0; i < mesh.Iterations; i++ {
		for l := range mesh.links {
			mesh.links[l].Solve(mesh.vertices, mesh.TensileStrength)
		}
	}
}

// Advance runs one simulation tick and hands the result to the Renderer.
func (mesh *Mesh) Advance() {
	mesh.Integrate()
	mesh.Relax()
	mesh.UpdateNormals()

	if mesh.Renderer != nil {
		mesh.Renderer.Update(mesh.Positions(nil), mesh.normals)
	}
}
