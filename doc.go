// Package motion animates the 2D affine transform of visual targets.
//
// A transform is handled as seven independent components (x, y, scaleX,
// scaleY, skewX, skewY, rotation). An [Updater] decomposes the target's
// current transform, interpolates each registered component with its own
// easing, and recomposes the result into a single matrix on every update.
//
// # Quick start
//
//	node := motion.NewNode("card", 200, 120)
//
//	u := motion.NewUpdater(node)
//	u.SetEase(ease.OutCubic) // github.com/fogleman/ease
//	u.AddPropStr("x", "50%") // half the node's width
//	u.AddProp("rotation", math.Pi/4)
//
//	u.Init()
//	for p := 0.0; p <= 1; p += 0.1 {
//		u.Update(p)
//	}
//	u.Complete()
//
// # Overlapping animations
//
// Updaters on the same target chain through a [Cache]: every Update commits
// its matrix, and a later Init or Update starts from the latest commit rather
// than the target's raw transform. When a newer updater claims components an
// older one is animating, the older one must [Updater.Overwrite] them before
// the newer one's first Update. [Animator] does this for you and converts
// elapsed seconds into progress with [gween]:
//
//	am := motion.NewAnimator(motion.AnimatorConfig{})
//	slide := am.NewUpdater(node)
//	slide.AddProp("x", 300)
//	am.Add(slide, 1.0, ease.InOutQuad) // github.com/tanema/gween/ease
//
//	// each frame
//	am.Update(dt)
//
// # Presets
//
// Animations can be described in YAML and loaded with [LoadPresets]; see
// [Preset].
//
// # Targets
//
// Anything implementing [Target] can be animated. [Node] is a ready-made
// target with a parent/child hierarchy and [ebiten] interop through
// [Node.GeoM].
//
// [gween]: https://github.com/tanema/gween
// [ebiten]: https://ebitengine.org
package motion
