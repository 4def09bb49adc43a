package texpack

import "testing"

func TestNewRectPoints(t *testing.T) {
	r := NewRectPoints(2, 3, 5, 4)
	if !r.Eq(NewRect(2, 3, 4, 2)) {
		t.Fatalf("NewRectPoints = %v, want <2, 3, 4, 2>", r)
	}
	if r.Right() != 5 || r.Bottom() != 4 {
		t.Errorf("Right, Bottom = %d, %d, want 5, 4", r.Right(), r.Bottom())
	}
}

func TestRectIntersects(t *testing.T) {
	base := NewRect(0, 0, 10, 10)
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"same", base, true},
		{"inside", NewRect(2, 2, 2, 2), true},
		{"overlap corner", NewRect(9, 9, 5, 5), true},
		{"touch right", NewRect(10, 0, 5, 5), false},
		{"touch bottom", NewRect(0, 10, 5, 5), false},
		{"disjoint", NewRect(20, 20, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("reverse Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(1, 1, 4, 4)
	if !r.ContainsRect(r) {
		t.Error("rect should contain itself")
	}
	if !r.ContainsRect(NewRect(2, 2, 3, 3)) {
		t.Error("rect should contain inner rect touching its edges")
	}
	if r.ContainsRect(NewRect(2, 2, 4, 3)) {
		t.Error("rect should not contain rect past its right edge")
	}
	if !r.Contains(4, 4) || r.Contains(5, 4) || r.Contains(0, 1) {
		t.Error("Contains does not match inclusive bounds")
	}
}

func TestRectIsOutline(t *testing.T) {
	r := NewRect(0, 0, 3, 3)
	for y, loopN := 0, 3; y < loopN; y++ {
		for x, loopN := 0, 3; x < loopN; x++ {
			want := x != 1 || y != 1
			if got := r.IsOutline(x, y); got != want {
				t.Errorf("IsOutline(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if r.IsOutline(3, 0) {
		t.Error("point outside of the rect is on the outline")
	}
}

func TestRectCrop(t *testing.T) {
	tests := []struct {
		name  string
		self  Rect
		other Rect
		want  []Rect
	}{
		{
			name:  "disjoint",
			self:  NewRect(0, 0, 4, 4),
			other: NewRect(10, 10, 2, 2),
			want:  []Rect{NewRect(0, 0, 4, 4)},
		},
		{
			name:  "center",
			self:  NewRect(0, 0, 10, 10),
			other: NewRect(3, 4, 2, 2),
			want: []Rect{
				NewRect(0, 0, 3, 10),
				NewRect(5, 0, 5, 10),
				NewRect(3, 0, 2, 4),
				NewRect(3, 6, 2, 4),
			},
		},
		{
			name:  "top-left corner",
			self:  NewRect(0, 0, 10, 10),
			other: NewRect(0, 0, 4, 3),
			want: []Rect{
				NewRect(4, 0, 6, 10),
				NewRect(0, 3, 4, 7),
			},
		},
		{
			name:  "covered",
			self:  NewRect(2, 2, 2, 2),
			other: NewRect(0, 0, 10, 10),
			want:  []Rect{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.self.Crop(tt.other)
			if len(got) != len(tt.want) {
				t.Fatalf("Crop = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !got[i].Eq(tt.want[i]) {
					t.Errorf("Crop[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}

			// The pieces cover exactly the area outside the intersection.
			area := 0
			for _, r := range got {
				area += r.Area()
			}
			if want := tt.self.Area() - tt.self.Intersect(tt.other).Area(); area != want {
				t.Errorf("pieces cover %d pixels, want %d", area, want)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	got := NewRect(0, 0, 2, 2).Union(NewRect(5, 1, 1, 4))
	if want := NewRect(0, 0, 6, 5); !got.Eq(want) {
		t.Errorf("Union = %v, want %v", got, want)
	}
}

// vim: ts=4
