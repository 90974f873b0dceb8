package ggdt

import "testing"

func TestRectRightAndBottom(t *testing.T) {
	r := NewRect(5, 6, 16, 12)
	if r.Right() != 20 {
		t.Errorf("Right() = %d, want 20", r.Right())
	}
	if r.Bottom() != 17 {
		t.Errorf("Bottom() = %d, want 17", r.Bottom())
	}

	r = NewRect(-11, -25, 16, 12)
	if r.Right() != 4 {
		t.Errorf("Right() = %d, want 4", r.Right())
	}
	if r.Bottom() != -14 {
		t.Errorf("Bottom() = %d, want -14", r.Bottom())
	}
}

func TestRectFromCoords(t *testing.T) {
	r := RectFromCoords(10, 15, 20, 30)
	if r.X != 10 || r.Y != 15 || r.Width != 11 || r.Height != 16 {
		t.Errorf("got %+v", r)
	}
	if r.Right() != 20 || r.Bottom() != 30 {
		t.Errorf("Right/Bottom = %d/%d", r.Right(), r.Bottom())
	}

	r = RectFromCoords(-5, -13, 6, -2)
	if r.X != -5 || r.Y != -13 || r.Width != 12 || r.Height != 12 {
		t.Errorf("got %+v", r)
	}
	if r.Right() != 6 || r.Bottom() != -2 {
		t.Errorf("Right/Bottom = %d/%d", r.Right(), r.Bottom())
	}
}

func TestRectFromCoordsSwappedOrder(t *testing.T) {
	r := RectFromCoords(20, 30, 10, 15)
	if r.X != 10 || r.Y != 15 || r.Width != 11 || r.Height != 16 {
		t.Errorf("got %+v", r)
	}
	if r.Right() != 20 || r.Bottom() != 30 {
		t.Errorf("Right/Bottom = %d/%d", r.Right(), r.Bottom())
	}

	r = RectFromCoords(6, -2, -5, -13)
	if r.X != -5 || r.Y != -13 || r.Width != 12 || r.Height != 12 {
		t.Errorf("got %+v", r)
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := RectFromCoords(10, 10, 20, 20)

	for _, p := range [][2]int32{{10, 10}, {15, 15}, {20, 20}} {
		if !r.ContainsPoint(p[0], p[1]) {
			t.Errorf("expected %v to be contained", p)
		}
	}
	for _, p := range [][2]int32{{12, 30}, {8, 12}, {25, 16}, {17, 4}} {
		if r.ContainsPoint(p[0], p[1]) {
			t.Errorf("expected %v to not be contained", p)
		}
	}
}

func TestRectContainsRect(t *testing.T) {
	r := RectFromCoords(10, 10, 20, 20)

	contained := []Rect{
		RectFromCoords(12, 12, 15, 15),
		RectFromCoords(10, 10, 15, 15),
		RectFromCoords(15, 15, 20, 20),
		RectFromCoords(10, 12, 20, 15),
		RectFromCoords(12, 10, 15, 20),
	}
	for _, other := range contained {
		if !r.ContainsRect(other) {
			t.Errorf("expected %+v to be contained in %+v", other, r)
		}
	}

	notContained := []Rect{
		RectFromCoords(5, 5, 15, 15),
		RectFromCoords(15, 15, 25, 25),
		RectFromCoords(2, 2, 8, 4),
		RectFromCoords(12, 21, 18, 25),
		RectFromCoords(22, 12, 32, 17),
	}
	for _, other := range notContained {
		if r.ContainsRect(other) {
			t.Errorf("expected %+v to not be contained in %+v", other, r)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	r := RectFromCoords(10, 10, 20, 20)

	overlapping := []Rect{
		RectFromCoords(12, 12, 15, 15),
		RectFromCoords(10, 10, 15, 15),
		RectFromCoords(15, 15, 20, 20),
		RectFromCoords(10, 12, 20, 15),
		RectFromCoords(12, 10, 15, 20),
		RectFromCoords(12, 5, 18, 10),
		RectFromCoords(13, 20, 16, 25),
		RectFromCoords(5, 12, 10, 18),
		RectFromCoords(20, 13, 25, 16),
		RectFromCoords(5, 5, 15, 15),
		RectFromCoords(15, 15, 25, 25),
	}
	for _, other := range overlapping {
		if !r.Overlaps(other) {
			t.Errorf("expected %+v to overlap %+v", other, r)
		}
	}

	notOverlapping := []Rect{
		RectFromCoords(2, 2, 8, 4),
		RectFromCoords(12, 21, 18, 25),
		RectFromCoords(22, 12, 32, 17),
		RectFromCoords(12, 5, 18, 9),
		RectFromCoords(13, 21, 16, 25),
		RectFromCoords(5, 12, 9, 18),
		RectFromCoords(21, 13, 25, 16),
	}
	for _, other := range notOverlapping {
		if r.Overlaps(other) {
			t.Errorf("expected %+v to not overlap %+v", other, r)
		}
	}
}

func TestRectClampTo(t *testing.T) {
	r := RectFromCoords(0, 0, 20, 20)
	ok := r.ClampTo(RectFromCoords(10, 10, 30, 30))
	if !ok {
		t.Fatal("expected overlap")
	}
	if r != RectFromCoords(10, 10, 20, 20) {
		t.Errorf("got %+v", r)
	}

	disjoint := RectFromCoords(0, 0, 5, 5)
	before := disjoint
	ok = disjoint.ClampTo(RectFromCoords(100, 100, 110, 110))
	if ok {
		t.Fatal("expected no overlap")
	}
	if disjoint != before {
		t.Errorf("rect should be unchanged when clamp fails, got %+v", disjoint)
	}
}
