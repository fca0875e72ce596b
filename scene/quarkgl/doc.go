// Package quarkgl provides a minimal, predictable software 3D engine for the station scene.
//
// QuarkGL draws lit triangle meshes and programmable point sprites into a
// floating-point (linear, HDR) render target. It is not a game engine and does not
// provide a GPU abstraction; the point stage is the only programmable part.
//
// Pipeline (fixed):
//
//	Scene → Transform → Projection → Clipping → Rasterization → Points → Frame output.
//
// Meshes are opaque and write depth. Point draws run after all meshes, test
// against the mesh depth and never write it, so additive glows layer freely.
//
// Create a Renderer once and reuse it; the render hot path does not allocate.
package quarkgl
