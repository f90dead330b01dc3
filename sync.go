package dicetray

// syncDie re-derives d's world-space anchor from its layout slot and the
// current viewport. The slot center maps to normalized device coordinates
// ([-1,1] both axes, Y flipped because screen Y grows downward), which are
// unprojected onto the z=0 NDC plane. Only BasePos.X and BasePos.Y are
// written; BasePos.Z stays with whatever the state machine put there, so a
// lifted die keeps its lift across a resync.
//
// Under an orthographic camera the die is additionally scaled from its slot
// width so it fills the slot consistently; under perspective the scale is
// left at 1 and apparent size comes from depth.
//
// Syncing is idempotent: with unchanged slot, viewport and camera, repeated
// calls produce bit-identical results.
func (t *Tray) syncDie(d *Die) {
	cx, cy := d.Slot.Center()

	ndcX, ndcY := 0.0, 0.0
	if t.viewport.Width > 0 && t.viewport.Height > 0 {
		ndcX = (cx-t.viewport.X)/t.viewport.Width*2 - 1
		ndcY = -((cy-t.viewport.Y)/t.viewport.Height*2 - 1)
	}

	p := t.camera.Unproject(Vec3{X: ndcX, Y: ndcY})
	d.BasePos.X = p.X
	d.BasePos.Y = p.Y

	if t.camera.Mode == ProjectionOrthographic {
		d.BaseScale = d.Slot.Width * t.ScalePerPixel
	} else {
		d.BaseScale = 1
	}
}
