// Package curvemesh compiles 2D vector paths (sequences of line, quadratic
// and cubic Bézier, and elliptic-arc commands) into GPU-ready triangle
// meshes suitable for Loop-Blinn curve rendering.
//
// # Overview
//
// A [Path] (a slice of [PathCommand]) is turned into a filled region by
// [Compile]: commands become [Curve] values, self-intersections are
// resolved through a half-edge planar subdivision (the DCEL), visible
// faces are picked according to a [FillRule], and each face is subdivided
// into flat [Triangle] values plus curved [CurveTriangle] and
// [DoubleCurveTriangle] values carrying the implicit-curve texture
// coordinates from Loop & Blinn's "Resolution Independent Curve
// Rendering using Programmable Graphics Hardware".
//
// # Quick Start
//
//	path := curvemesh.Path{
//		curvemesh.MoveTo(curvemesh.Vec2{X: 0, Y: 0}),
//		curvemesh.LineTo(curvemesh.Vec2{X: 1, Y: 0}),
//		curvemesh.LineTo(curvemesh.Vec2{X: 0, Y: 1}),
//		curvemesh.ClosePath(),
//	}
//	drawing := curvemesh.Compile(path, curvemesh.FillRuleNonZero)
//
// # Architecture
//
// The pipeline has no shared mutable state: every [Compile] call builds and
// discards its own DCEL. See SPEC_FULL.md and DESIGN.md in the module root
// for the full component breakdown and the libraries each stage grounds on.
package curvemesh
