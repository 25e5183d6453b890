package render3d

// Color is an RGB color with components in [0, 1].
type Color struct {
	R, G, B float32
}

// RGB returns a new Color with the given components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Material describes the surface of an Object for the standard program.
type Material struct {
	Color     Color
	Metallic  float32 // [0, 1]
	Roughness float32 // [0, 1]
	// Emission, when non-zero, adds a time-pulsed glow independent of the
	// object's Animation.
	Emission Color
}

// GeometryType selects a primitive mesh builder.
type GeometryType string

// Geometry types known to the mesh cache. Anything else falls back to a
// unit box.
const (
	GeometryBox    GeometryType = "box"
	GeometrySphere GeometryType = "sphere"
	GeometryPlane  GeometryType = "plane"
	GeometryCustom GeometryType = "custom"
)

// Geometry is a primitive descriptor: a type plus named numeric parameters
// such as "width" or "radius". Missing parameters take builder defaults.
type Geometry struct {
	Type   GeometryType
	Params map[string]float32
}

// AnimationType selects a procedural animation.
type AnimationType string

// Animation types understood by Animate. Unknown types are a no-op.
const (
	AnimationRotate AnimationType = "rotate"
	AnimationFloat  AnimationType = "float"
	AnimationPulse  AnimationType = "pulse"
)

// Animation describes per-frame procedural motion applied on top of an
// object's base transform. It is evaluated against absolute time, so the
// same timestamp always yields the same pose.
type Animation struct {
	Type      AnimationType
	Speed     float32
	Amplitude float32
}

// Transform is a position, Euler rotation (radians), and per-axis scale.
type Transform struct {
	Position Vector3
	Rotation Vector3
	Scale    Vector3
}

// Object is one renderable entity in a Scene. The renderer never mutates
// an Object; animation produces a derived transform each frame.
type Object struct {
	ID string
	Transform
	Material    Material
	Geometry    Geometry
	Animation   *Animation
	Interactive bool
}

// DirectionalLight is a single infinite-distance light.
type DirectionalLight struct {
	Color     Color
	Intensity float32
	Direction Vector3
}

// Fog is linear distance fog. A zero Fog (Far <= Near) disables it.
type Fog struct {
	Color Color
	Near  float32
	Far   float32
}

// Scene is the full set of data rendered each frame. It is owned by the
// caller, must not change during a Render call, and may be swapped
// wholesale between frames.
type Scene struct {
	Ambient Color
	Light   DirectionalLight
	Fog     Fog
	Objects []Object
}

// Camera is the viewpoint for a frame. Rotation holds pitch/yaw/roll in
// radians and FOV is the vertical field of view in degrees. The renderer
// reads the camera; input collaborators mutate it.
type Camera struct {
	Position Vector3
	Rotation Vector3
	FOV      float32
}
