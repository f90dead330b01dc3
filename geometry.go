package dicetray

import (
	"math"
	"sort"
)

// Geometry is the shared mesh for one die kind: unit-circumradius vertices
// centered on the origin, faces as outward-wound vertex cycles, and
// precomputed face normals. One Geometry exists per kind; every die of that
// kind points at the same instance and must not mutate it.
type Geometry struct {
	Kind    Kind
	Verts   []Vec3
	Faces   [][]int // vertex indices per face, wound counter-clockwise seen from outside
	Normals []Vec3  // outward unit normal per face
}

// geometries holds the lazily-built shared meshes, one per kind.
// No locking (dicetray is single-threaded).
var geometries [kindCount]*Geometry

// GeometryFor returns the shared mesh for kind, building it on first use.
// The same pointer is returned for every call with the same kind.
// Panics on an unknown kind.
func GeometryFor(kind Kind) *Geometry {
	if kind >= kindCount {
		panic("dicetray: unknown die kind")
	}
	if geometries[kind] == nil {
		geometries[kind] = buildGeometry(kind)
	}
	return geometries[kind]
}

// Triangles returns the number of triangles a fan triangulation of all
// faces produces.
func (g *Geometry) Triangles() int {
	n := 0
	for _, f := range g.Faces {
		n += len(f) - 2
	}
	return n
}

func buildGeometry(kind Kind) *Geometry {
	var verts []Vec3
	var faces [][]int
	switch kind {
	case D4:
		verts, faces = tetrahedron()
	case D6:
		verts, faces = hexahedron()
	case D8:
		verts, faces = octahedron()
	case D12:
		verts, faces = dodecahedron()
	case D20:
		verts, faces = icosahedron()
	default:
		panic("dicetray: unknown die kind")
	}

	g := &Geometry{Kind: kind, Verts: verts, Faces: faces}
	g.finish()
	return g
}

// finish orients every face outward and computes normals. Input face cycles
// may be wound either way; the winding is fixed here using the fact that all
// five solids are convex and origin-centered.
func (g *Geometry) finish() {
	g.Normals = make([]Vec3, len(g.Faces))
	for i, f := range g.Faces {
		n := faceNormal(g.Verts, f)
		if n.Dot(faceCentroid(g.Verts, f)) < 0 {
			reverseFace(f)
			n = n.Scale(-1)
		}
		g.Normals[i] = n
	}
}

// faceNormal returns the unit normal of a planar convex face from its first
// three vertices.
func faceNormal(verts []Vec3, face []int) Vec3 {
	e1 := verts[face[1]].Sub(verts[face[0]])
	e2 := verts[face[2]].Sub(verts[face[0]])
	return e1.Cross(e2).Normalize()
}

// faceCentroid returns the average of a face's vertices.
func faceCentroid(verts []Vec3, face []int) Vec3 {
	var c Vec3
	for _, vi := range face {
		c = c.Add(verts[vi])
	}
	return c.Scale(1 / float64(len(face)))
}

func reverseFace(f []int) {
	for i, j := 0, len(f)-1; i < j; i, j = i+1, j-1 {
		f[i], f[j] = f[j], f[i]
	}
}

// normalized scales every vertex onto the unit sphere.
func normalized(verts []Vec3) []Vec3 {
	for i := range verts {
		verts[i] = verts[i].Normalize()
	}
	return verts
}

// --- Solid definitions ---

func tetrahedron() ([]Vec3, [][]int) {
	verts := normalized([]Vec3{
		{1, 1, 1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, 1},
	})
	// One face opposite each vertex.
	faces := [][]int{
		{1, 2, 3}, {0, 3, 2}, {0, 1, 3}, {0, 2, 1},
	}
	return verts, faces
}

func hexahedron() ([]Vec3, [][]int) {
	verts := normalized([]Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	})
	faces := [][]int{
		{0, 1, 2, 3}, // z = -1
		{4, 5, 6, 7}, // z = +1
		{1, 2, 6, 5}, // x = +1
		{0, 3, 7, 4}, // x = -1
		{2, 3, 7, 6}, // y = +1
		{0, 1, 5, 4}, // y = -1
	}
	return verts, faces
}

func octahedron() ([]Vec3, [][]int) {
	verts := []Vec3{
		{1, 0, 0}, {-1, 0, 0},
		{0, 1, 0}, {0, -1, 0},
		{0, 0, 1}, {0, 0, -1},
	}
	// One face per sign octant.
	faces := [][]int{
		{0, 2, 4}, {0, 2, 5}, {0, 3, 4}, {0, 3, 5},
		{1, 2, 4}, {1, 2, 5}, {1, 3, 4}, {1, 3, 5},
	}
	return verts, faces
}

func icosahedron() ([]Vec3, [][]int) {
	p := (1 + math.Sqrt(5)) / 2
	verts := normalized([]Vec3{
		{0, 1, p}, {0, 1, -p}, {0, -1, p}, {0, -1, -p},
		{1, p, 0}, {1, -p, 0}, {-1, p, 0}, {-1, -p, 0},
		{p, 0, 1}, {-p, 0, 1}, {p, 0, -1}, {-p, 0, -1},
	})
	return verts, cliqueFaces(verts)
}

// cliqueFaces derives triangular faces as triples of mutually nearest
// vertices. Valid for deltahedra whose edge graph has no non-face 3-cliques,
// which holds for the icosahedron.
func cliqueFaces(verts []Vec3) [][]int {
	n := len(verts)

	minDist := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := verts[i].Sub(verts[j]).Length(); d < minDist {
				minDist = d
			}
		}
	}
	limit := minDist * 1.01

	adjacent := func(i, j int) bool {
		return verts[i].Sub(verts[j]).Length() <= limit
	}

	var faces [][]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !adjacent(i, j) {
				continue
			}
			for k := j + 1; k < n; k++ {
				if adjacent(i, k) && adjacent(j, k) {
					faces = append(faces, []int{i, j, k})
				}
			}
		}
	}
	return faces
}

// dodecahedron is built as the dual of the icosahedron: one vertex per
// icosahedron face (its normalized centroid), one pentagonal face per
// icosahedron vertex (the five faces meeting there, ordered around it).
func dodecahedron() ([]Vec3, [][]int) {
	iv, ifaces := icosahedron()

	verts := make([]Vec3, len(ifaces))
	for i, f := range ifaces {
		verts[i] = faceCentroid(iv, f).Normalize()
	}

	faces := make([][]int, len(iv))
	for v := range iv {
		var ring []int
		for fi, f := range ifaces {
			if f[0] == v || f[1] == v || f[2] == v {
				ring = append(ring, fi)
			}
		}
		sortAroundAxis(ring, verts, iv[v])
		faces[v] = ring
	}
	return verts, faces
}

// sortAroundAxis orders the given vertex indices into a cycle around the
// axis direction, by angle in the plane perpendicular to it.
func sortAroundAxis(ring []int, verts []Vec3, axis Vec3) {
	axis = axis.Normalize()

	// Build a tangent basis perpendicular to the axis.
	ref := Vec3{Y: 1}
	if math.Abs(axis.Dot(ref)) > 0.9 {
		ref = Vec3{X: 1}
	}
	u := axis.Cross(ref).Normalize()
	w := axis.Cross(u)

	sort.Slice(ring, func(a, b int) bool {
		pa, pb := verts[ring[a]], verts[ring[b]]
		angA := math.Atan2(pa.Dot(w), pa.Dot(u))
		angB := math.Atan2(pb.Dot(w), pb.Dot(u))
		return angA < angB
	})
}
