package stage

import "station/scene/quarkgl"

// Camera projection and starting pose.
var (
	CameraStart                = quarkgl.V3(4, 5, -16)
	CameraFOV                  = quarkgl.DegToRad(45)
	CameraNear  quarkgl.Scalar = 0.1
	CameraFar   quarkgl.Scalar = 1000
)

const maxMeshes = 8

// Lights is the scene's light rig.
func Lights() quarkgl.LightRig {
	return quarkgl.LightRig{
		Ambient:     quarkgl.AmbientLight{Color: quarkgl.MustHex("#889aaa"), Intensity: 0.25},
		Environment: quarkgl.AmbientLight{Color: quarkgl.RGB(1, 1, 1), Intensity: 0.6},
		Dir: []quarkgl.DirLight{
			{Pos: quarkgl.V3(10, 15, 10), Color: quarkgl.MustHex("#ddeeff"), Intensity: 3.0},
			{Pos: quarkgl.V3(-10, 8, -5), Color: quarkgl.MustHex("#88aadd"), Intensity: 1.2},
			{Pos: quarkgl.V3(0, -8, 8), Color: quarkgl.MustHex("#aabbcc"), Intensity: 0.6},
		},
		Point: []quarkgl.PointLight{
			{Pos: quarkgl.V3(0, 3, 0), Color: quarkgl.MustHex("#ccddff"), Intensity: 1.5, Range: 25},
			{Pos: quarkgl.V3(-5, 0, -5), Color: quarkgl.MustHex("#66ccaa"), Intensity: 0.6, Range: 20},
			{Pos: quarkgl.V3(5, -2, 5), Color: quarkgl.MustHex("#aaccff"), Intensity: 0.5, Range: 20},
		},
	}
}

func newScene() *quarkgl.Scene {
	s := quarkgl.CreateScene(maxMeshes)
	s.Camera = quarkgl.Camera{
		Position: CameraStart,
		Target:   quarkgl.V3(0, 0, 0),
		Up:       quarkgl.V3(0, 1, 0),
		FOVYRad:  CameraFOV,
		Near:     CameraNear,
		Far:      CameraFar,
	}
	s.Lights = Lights()
	return s
}
