package qtxt

import "cogentcore.org/core/math32"

// Returns the column-major transform applied to queued glyphs in
// normalized device coordinates for the given params and screen size.
//
// The transform is T·O·A·R·S·H·A⁻¹·O⁻¹, where T translates by the
// destination, O moves the origin to the top-left screen corner, A
// corrects the aspect ratio, R rotates, S scales and H shears. With
// default params, the result is the identity.
//
// Non-positive screen dimensions are treated as 1.
func DrawTransform(params DrawParams, screenWidth, screenHeight int) math32.Matrix4 {
	w, h := float32(max(screenWidth, 1)), float32(max(screenHeight, 1))

	var transform, step math32.Matrix4
	transform.SetTranslation(2*params.Dest.X/w, -2*params.Dest.Y/h, 0)
	compose := func() {
		var out math32.Matrix4
		out.MulMatrices(&transform, &step)
		transform = out
	}

	step.SetTranslation(-1, 1, 0)
	compose()
	step.SetScale(1, w/h, 1)
	compose()
	step.SetRotationZ(-params.Rotation)
	compose()
	step.SetScale(params.Scale.X, params.Scale.Y, 1)
	compose()
	step = math32.Matrix4{
		1, -params.Shear.Y, 0, 0,
		-params.Shear.X, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	compose()
	step.SetScale(1, h/w, 1)
	compose()
	step.SetTranslation(1, -1, 0)
	compose()
	return transform
}
