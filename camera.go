package dicetray

import "math"

// Projection selects how the camera maps world space to the screen.
type Projection uint8

const (
	// ProjectionOrthographic is a parallel projection, the default. It maps
	// slot centers to world positions uniformly at any depth, so dice stay
	// visually pinned to their slots, and a die's base scale follows its
	// slot width (see Tray.ScalePerPixel).
	ProjectionOrthographic Projection = iota
	// ProjectionPerspective foreshortens with distance. Slot-width scaling
	// is disabled under this mode; dice keep their neutral base scale.
	ProjectionPerspective
)

func (p Projection) String() string {
	switch p {
	case ProjectionOrthographic:
		return "orthographic"
	case ProjectionPerspective:
		return "perspective"
	}
	return "unknown"
}

// Camera maps between world space and the tray surface. It always looks at
// the origin from a point on the +Z axis, with +Y up in world space.
type Camera struct {
	// Mode selects the projection. Call MarkDirty after changing it directly.
	Mode Projection

	// FOV is the vertical field of view in radians (perspective mode).
	FOV float64
	// Near and Far bound the visible depth range.
	Near, Far float64
	// Distance is the eye's offset from the origin along +Z.
	Distance float64
	// OrthoHeight is the world-space height of the view volume
	// (orthographic mode). Width follows the viewport aspect ratio.
	OrthoHeight float64

	width, height float64

	viewProj    Mat4
	invViewProj Mat4
	dirty       bool
}

// NewCamera creates a Camera with default values: orthographic projection
// with a 10-unit view height, eye 10 units from the origin. Perspective
// mode keeps a 45 degree vertical FOV.
func NewCamera() *Camera {
	return &Camera{
		Mode:        ProjectionOrthographic,
		FOV:         math.Pi / 4,
		Near:        0.1,
		Far:         100,
		Distance:    10,
		OrthoHeight: 10,
		dirty:       true,
	}
}

// SetViewport sets the viewport size in pixels and re-derives the projection.
// Called by Tray.Resize; the projection is never stale relative to the
// viewport.
func (c *Camera) SetViewport(width, height float64) {
	c.width = width
	c.height = height
	c.dirty = true
}

// SetMode switches the projection mode.
func (c *Camera) SetMode(mode Projection) {
	if mode != c.Mode {
		c.Mode = mode
		c.dirty = true
	}
}

// MarkDirty forces a recomputation of the cached matrices. Call this after
// modifying FOV, Near, Far, Distance, or OrthoHeight directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeMatrices recomputes the cached view-projection and its inverse if
// dirty.
func (c *Camera) computeMatrices() {
	if !c.dirty {
		return
	}
	c.dirty = false

	aspect := 1.0
	if c.width > 0 && c.height > 0 {
		aspect = c.width / c.height
	}

	var proj Mat4
	switch c.Mode {
	case ProjectionOrthographic:
		hh := c.OrthoHeight / 2
		hw := hh * aspect
		proj = Ortho(-hw, hw, -hh, hh, c.Near, c.Far)
	default:
		proj = Perspective(c.FOV, aspect, c.Near, c.Far)
	}

	view := LookAt(Vec3{Z: c.Distance}, Vec3{}, Vec3{Y: 1})
	c.viewProj = proj.Mul(view)
	c.invViewProj = c.viewProj.Inverse()
}

// ViewProjection returns the combined view-projection matrix, recomputing it
// if needed.
func (c *Camera) ViewProjection() Mat4 {
	c.computeMatrices()
	return c.viewProj
}

// Unproject maps a point in normalized device coordinates (x, y in [-1, 1],
// z in [-1, 1]) back to world space through the inverse view-projection.
func (c *Camera) Unproject(ndc Vec3) Vec3 {
	c.computeMatrices()
	p := c.invViewProj.MulVec4(Vec4{ndc.X, ndc.Y, ndc.Z, 1})
	if p[3] != 0 {
		return Vec3{p[0] / p[3], p[1] / p[3], p[2] / p[3]}
	}
	return Vec3{p[0], p[1], p[2]}
}

// Project maps a world-space point to surface pixel coordinates (origin
// top-left, Y down) plus a depth value in [-1, 1] that grows with distance
// from the camera. Points behind the eye in perspective mode produce depths
// outside that range.
func (c *Camera) Project(world Vec3) (sx, sy, depth float64) {
	c.computeMatrices()
	clip := c.viewProj.MulVec4(Vec4{world.X, world.Y, world.Z, 1})
	w := clip[3]
	if w == 0 {
		w = 1
	}
	ndcX := clip[0] / w
	ndcY := clip[1] / w
	ndcZ := clip[2] / w

	sx = (ndcX + 1) / 2 * c.width
	sy = (1 - ndcY) / 2 * c.height
	return sx, sy, ndcZ
}

// eye returns the camera position in world space.
func (c *Camera) eye() Vec3 {
	return Vec3{Z: c.Distance}
}
