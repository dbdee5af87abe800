package rattrig

// Point is a 2D point. It is an immutable value; all methods return
// new values.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{x, y}
}

// Vec reinterprets the point as a displacement from the origin.
func (p Point[T]) Vec() Vector[T] {
	return Vector[T](p)
}

// Vector is a 2D displacement. It shares its representation with
// Point but plays a different semantic role: formulas that care about
// direction and magnitude, such as [Spread] and [Cross], take
// vectors.
type Vector[T Scalar] struct {
	X, Y T
}

// Vec is shorthand for Vector[T]{x, y}.
func Vec[T Scalar](x, y T) Vector[T] {
	return Vector[T]{x, y}
}

// Add returns the vector sum v + w.
func (v Vector[T]) Add(w Vector[T]) Vector[T] {
	return Vector[T]{v.X + w.X, v.Y + w.Y}
}

// Sub returns the vector difference v - w. For unsigned types the
// usual wraparound semantics of the type apply.
func (v Vector[T]) Sub(w Vector[T]) Vector[T] {
	return Vector[T]{v.X - w.X, v.Y - w.Y}
}

// Quadrance returns the quadrance of the vector, the squared distance
// from its tip to the origin.
func (v Vector[T]) Quadrance() T {
	return v.X*v.X + v.Y*v.Y
}

// Point3 is a 3D point.
type Point3[T Scalar] struct {
	X, Y, Z T
}

// Pt3 is shorthand for Point3[T]{x, y, z}.
func Pt3[T Scalar](x, y, z T) Point3[T] {
	return Point3[T]{x, y, z}
}

// Vec3 reinterprets the point as a displacement from the origin.
func (p Point3[T]) Vec3() Vector3[T] {
	return Vector3[T](p)
}

// Vector3 is a 3D displacement.
type Vector3[T Scalar] struct {
	X, Y, Z T
}

// V3 is shorthand for Vector3[T]{x, y, z}.
func V3[T Scalar](x, y, z T) Vector3[T] {
	return Vector3[T]{x, y, z}
}

// Add returns the vector sum v + w.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X + w.X, v.Y + w.Y, v.Z + w.Z}
}

// Sub returns the vector difference v - w.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return Vector3[T]{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Quadrance returns the quadrance of the vector.
func (v Vector3[T]) Quadrance() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Line is the line a·x + b·y + c = 0. A non-degenerate line requires
// (a, b) ≠ (0, 0); the formulas do not enforce this, so callers must
// either guarantee it or use the fault-checked variants.
type Line[T Scalar] struct {
	A, B, C T
}

// Ln is shorthand for Line[T]{a, b, c}.
func Ln[T Scalar](a, b, c T) Line[T] {
	return Line[T]{a, b, c}
}

// Triangle is a 2D triangle given by three points. Its orientation
// queries need a signed scalar; unsigned domains work with the free
// functions on points directly.
//
// A non-degenerate triangle requires the three points not collinear.
// Nothing enforces or corrects that; IsDegenerate exposes it as a
// query.
type Triangle[T Signed] struct {
	P1, P2, P3 Point[T]
}

// Tri is shorthand for Triangle[T]{p1, p2, p3}.
func Tri[T Signed](p1, p2, p3 Point[T]) Triangle[T] {
	return Triangle[T]{p1, p2, p3}
}

// Quadrances returns the quadrances of the triangle's sides, each
// named for the vertex opposite it.
func (t Triangle[T]) Quadrances() (q1, q2, q3 T) {
	return Quadrances(t.P1, t.P2, t.P3)
}

// Spreads returns the spreads at the triangle's vertices via the
// cross law, each named for its vertex.
func (t Triangle[T]) Spreads() (s1, s2, s3 T) {
	return Spreads(t.P1, t.P2, t.P3)
}

// Quadrea returns Archimedes' function of the side quadrances, 16
// times the squared area of the triangle.
func (t Triangle[T]) Quadrea() T {
	q1, q2, q3 := t.Quadrances()
	return Archimedes(q1, q2, q3)
}

// Twist returns twice the signed area of the triangle. The sign tells
// the orientation of the vertex order; zero means the points are
// collinear.
func (t Triangle[T]) Twist() T {
	return Twist(t.P1, t.P2, t.P3)
}

// IsDegenerate reports whether the triangle's points are collinear.
func (t Triangle[T]) IsDegenerate() bool {
	return t.Twist() == 0
}

// Triangle3 is a 3D triangle given by three points.
type Triangle3[T Scalar] struct {
	P1, P2, P3 Point3[T]
}

// Tri3 is shorthand for Triangle3[T]{p1, p2, p3}.
func Tri3[T Scalar](p1, p2, p3 Point3[T]) Triangle3[T] {
	return Triangle3[T]{p1, p2, p3}
}

// Quadrances returns the quadrances of the triangle's sides, each
// named for the vertex opposite it.
func (t Triangle3[T]) Quadrances() (q1, q2, q3 T) {
	return Quadrances3(t.P1, t.P2, t.P3)
}

// Quadrea returns Archimedes' function of the side quadrances.
func (t Triangle3[T]) Quadrea() T {
	q1, q2, q3 := t.Quadrances()
	return Archimedes(q1, q2, q3)
}
