package g3d

import "testing"

func TestAABB(t *testing.T) {
	b := NewAABB(-10, -10, -10, 10, 10, 10)

	if got := b.Center(); got != Pt3(0, 0, 0) {
		t.Errorf("Center = %v", got)
	}
	if got := b.Size(); got != V3(20, 20, 20) {
		t.Errorf("Size = %v", got)
	}

	tests := []struct {
		name string
		p    Point3
		want bool
	}{
		{"origin", Pt3(0, 0, 0), true},
		{"on face", Pt3(10, 0, 0), true},
		{"corner", Pt3(-10, -10, -10), true},
		{"outside", Pt3(10.5, 0, 0), false},
		{"outside z", Pt3(0, 0, -11), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestAABB_Merge(t *testing.T) {
	a := NewAABB(0, 0, 0, 1, 1, 1)
	b := NewAABB(-1, 0.5, 0.5, 0.5, 3, 0.75)
	want := NewAABB(-1, 0, 0, 1, 3, 1)
	if got := a.Merge(b); got != want {
		t.Errorf("Merge = %v, want %v", got, want)
	}
	if got := b.Merge(a); got != want {
		t.Errorf("Merge is not symmetric: %v", got)
	}
}

func TestAABBFromPoints(t *testing.T) {
	empty := AABBFromPoints()
	if !empty.IsEmpty() {
		t.Errorf("no points should give an empty box: %v", empty)
	}
	b := AABBFromPoints(Pt3(1, 2, 3), Pt3(-1, 5, 0))
	if b != NewAABB(-1, 2, 0, 1, 5, 3) {
		t.Errorf("AABBFromPoints = %v", b)
	}
	if got := empty.Merge(b); got != b {
		t.Errorf("empty.Merge = %v", got)
	}
}

func TestAABB_Transform(t *testing.T) {
	b := NewAABB(0, 0, 0, 1, 2, 3)
	got := b.Transform(Translation(V3(1, 1, 1)).Mul(Scaling(V3(2, 2, 2))))
	if got != NewAABB(1, 1, 1, 3, 5, 7) {
		t.Errorf("Transform = %v", got)
	}
	rot := RotationFromQuaternion(QuaternionFromAxisAngle(V3(0, 0, 1), Degrees(90).ToRadians()))
	r := NewAABB(0, 0, 0, 2, 1, 1).Transform(rot)
	if !r.Size().Approx(V3(1, 2, 1), 1e-12) {
		t.Errorf("rotated size = %v", r.Size())
	}
}
