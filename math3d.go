package render3d

import "github.com/chewxy/math32"

// Vector3 is a 3D vector with float32 components.
// It is an immutable value type: every operation returns a new vector.
type Vector3 struct {
	X, Y, Z float32
}

// Vec3 returns a new Vector3 with the given components.
func Vec3(x, y, z float32) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns the vector scaled by a scalar.
func (v Vector3) Scale(s float32) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vector3) Dot(other Vector3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors.
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vector3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the same direction.
// The zero vector normalizes to the zero vector rather than NaN.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return Vector3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Mat4 is a 4x4 matrix stored in column-major order, the layout consumed
// directly by the graphics API. Element (row r, column c) is at index c*4+r.
type Mat4 [16]float32

// Identity returns the 4x4 identity matrix.
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// Perspective returns a right-handed perspective projection matrix with the
// conventional OpenGL clip-space layout. The field of view is given in
// degrees and measured vertically.
func Perspective(fovDegrees, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovDegrees*math32.Pi/360)
	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / (near - far)
	m[11] = -1
	m[14] = 2 * far * near / (near - far)
	return m
}

// LookAt returns a view matrix positioning the camera at eye, looking at
// target, with the given up direction.
func LookAt(eye, target, up Vector3) Mat4 {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis)

	var m Mat4
	m[0], m[4], m[8] = xAxis.X, xAxis.Y, xAxis.Z
	m[1], m[5], m[9] = yAxis.X, yAxis.Y, yAxis.Z
	m[2], m[6], m[10] = zAxis.X, zAxis.Y, zAxis.Z
	m[12] = -xAxis.Dot(eye)
	m[13] = -yAxis.Dot(eye)
	m[14] = -zAxis.Dot(eye)
	m[15] = 1
	return m
}

// Translate returns a translation matrix.
func Translate(v Vector3) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = v.X, v.Y, v.Z
	return m
}

// ScaleMat returns a scale matrix.
func ScaleMat(v Vector3) Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = v.X, v.Y, v.Z, 1
	return m
}

// RotateX returns a rotation matrix around the X axis (radians).
func RotateX(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateY returns a rotation matrix around the Y axis (radians).
func RotateY(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotateZ returns a rotation matrix around the Z axis (radians).
func RotateZ(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// ModelMatrix composes a world transform from a Transform as
// Translation * RotationY * RotationX * RotationZ * Scale.
// The Euler order is load-bearing: swapping it changes on-screen
// orientation for combined multi-axis rotations.
func ModelMatrix(t Transform) Mat4 {
	return Translate(t.Position).
		Mul(RotateY(t.Rotation.Y)).
		Mul(RotateX(t.Rotation.X)).
		Mul(RotateZ(t.Rotation.Z)).
		Mul(ScaleMat(t.Scale))
}
