package dicetray

import (
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Fixed directional light for flat shading. Shade = ambient + diffuse * n·l.
var lightDir = Vec3{X: -0.35, Y: 0.6, Z: 0.7}.Normalize()

const (
	lightAmbient = 0.35
	lightDiffuse = 0.65
)

// visibleFace is a front-facing die face queued for submission, with its
// painter-sort key and flat shade.
type visibleFace struct {
	face  int
	depth float64
	shade float64
}

// drawBatch accumulates the frame's triangles for a single DrawTriangles32
// call, plus per-die scratch buffers. All slices are reset with [:0] so
// capacity persists across frames (high-water allocation).
type drawBatch struct {
	verts []ebiten.Vertex
	inds  []uint32

	world     []Vec3 // world-space vertex positions of the current die
	projected []Vec3 // X,Y screen pixels, Z NDC depth
	faces     []visibleFace
}

// composeModel builds the die's model matrix from its current fields:
// translate by anchor plus offset, spin about Y, fixed tilt about X, then
// uniform scale. Composed fresh every frame, nothing cached.
func composeModel(d *Die) Mat4 {
	s := d.BaseScale * d.AnimScale
	pos := d.BasePos.Add(d.Offset)
	return Translate(pos.X, pos.Y, pos.Z).
		Mul(RotateY(d.Spin)).
		Mul(RotateX(dieTilt)).
		Mul(ScaleMat(s, s, s))
}

// renderDice projects every die into screen space and submits all visible
// faces as one DrawTriangles32 call against the shared white pixel. Dice
// are submitted in insertion order; within a die, faces go back to front.
func (t *Tray) renderDice(target *ebiten.Image) debugStats {
	var stats debugStats

	b := &t.batch
	b.verts = b.verts[:0]
	b.inds = b.inds[:0]

	for _, d := range t.dice {
		t.appendDie(b, d, &stats)
	}

	if len(b.verts) == 0 {
		return stats
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles32(b.verts, b.inds, WhitePixel, &triOp)
	return stats
}

// appendDie transforms, culls, shades, sorts, and appends one die's faces
// to the batch.
func (t *Tray) appendDie(b *drawBatch, d *Die, stats *debugStats) {
	g := d.Geometry
	model := composeModel(d)
	rot := RotateY(d.Spin).Mul(RotateX(dieTilt))

	b.world = b.world[:0]
	b.projected = b.projected[:0]
	for _, v := range g.Verts {
		w := model.TransformPoint(v)
		b.world = append(b.world, w)
		sx, sy, depth := t.camera.Project(w)
		b.projected = append(b.projected, Vec3{X: sx, Y: sy, Z: depth})
	}

	eye := t.camera.eye()
	ortho := t.camera.Mode == ProjectionOrthographic

	b.faces = b.faces[:0]
	for i, f := range g.Faces {
		n := rot.TransformDirection(g.Normals[i])

		// Backface cull against the actual eye; under orthographic
		// projection the view direction is constant -Z.
		var facing float64
		if ortho {
			facing = n.Z
		} else {
			facing = n.Dot(eye.Sub(faceCentroid(b.world, f)))
		}
		if facing <= 0 {
			stats.facesCulled++
			continue
		}

		shade := lightAmbient + lightDiffuse*math.Max(0, n.Dot(lightDir))

		depth := 0.0
		for _, vi := range f {
			depth += b.projected[vi].Z
		}
		depth /= float64(len(f))

		b.faces = append(b.faces, visibleFace{face: i, depth: depth, shade: shade})
	}

	// Painter's order: farthest faces first. Correct for a single convex
	// solid after culling; dice never interpenetrate because each owns
	// its own slot.
	sort.Slice(b.faces, func(x, y int) bool {
		return b.faces[x].depth > b.faces[y].depth
	})

	a := float32(d.Style.Color.A)
	for _, vf := range b.faces {
		f := g.Faces[vf.face]

		// Premultiplied per-face color: flat shade needs its own copy of
		// each vertex, so faces never share batch vertices.
		cr := float32(d.Style.Color.R*vf.shade) * a
		cg := float32(d.Style.Color.G*vf.shade) * a
		cb := float32(d.Style.Color.B*vf.shade) * a

		base := uint32(len(b.verts))
		for _, vi := range f {
			p := b.projected[vi]
			b.verts = append(b.verts, ebiten.Vertex{
				DstX:   float32(p.X),
				DstY:   float32(p.Y),
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: a,
			})
		}
		for k := 1; k+1 < len(f); k++ {
			b.inds = append(b.inds, base, base+uint32(k), base+uint32(k+1))
			stats.triCount++
		}
		stats.facesDrawn++
	}
}
