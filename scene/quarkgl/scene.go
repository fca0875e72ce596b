package quarkgl

// Material is a minimal surface description.
type Material struct {
	Albedo   Color
	Emissive Color
}

// Camera describes the viewing transform.
//
// Position and Target are shared state: the choreographer and the orbit
// controller both write them during a frame.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	// Vertical field of view.
	FOVYRad Scalar

	Near Scalar
	Far  Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the perspective matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	fov := c.FOVYRad
	if fov == 0 {
		fov = 1.0
	}
	return Mat4Perspective(fov, aspect, c.Near, c.Far)
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform Mat4
	Material  Material
}

// Scene is a collection of objects to render.
type Scene struct {
	Camera Camera
	Lights LightRig

	meshes []Mesh
	alive  []bool

	points []PointShader
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Position: V3(0, 0, 3),
			Target:   V3(0, 0, 0),
			Up:       V3(0, 1, 0),
			FOVYRad:  1.0,
			Near:     0.05,
			Far:      100,
		},
		Lights: LightRig{
			Ambient: AmbientLight{Color: RGB(1, 1, 1), Intensity: 0.25},
			Dir: []DirLight{
				{Pos: V3(1, 1, 1), Color: RGB(1, 1, 1), Intensity: 2.4},
			},
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		if m.Material.Albedo == (Color{}) {
			m.Material.Albedo = RGB(0.6, 0.6, 0.6)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// AddPoints registers a point draw. Point draws render after all meshes,
// in registration order.
func (s *Scene) AddPoints(p PointShader) {
	if s == nil || p == nil {
		return
	}
	s.points = append(s.points, p)
}

// MeshCount returns the number of live meshes.
func (s *Scene) MeshCount() int {
	n := 0
	s.eachMesh(func(*Mesh) { n++ })
	return n
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}
