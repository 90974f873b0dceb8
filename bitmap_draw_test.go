package ggdt

import "testing"

func TestHorizLineAndVertLine(t *testing.T) {
	bmp, _ := NewBitmap[uint8](10, 10)
	bmp.HorizLine(2, 8, 5, 1)
	for x := int32(2); x <= 8; x++ {
		if v, _ := bmp.GetPixel(x, 5); v != 1 {
			t.Errorf("HorizLine missing pixel at (%d, 5)", x)
		}
	}
	if v, _ := bmp.GetPixel(9, 5); v != 0 {
		t.Errorf("HorizLine overran to (9, 5)")
	}

	bmp.VertLine(3, 1, 6, 2)
	for y := int32(1); y <= 6; y++ {
		if v, _ := bmp.GetPixel(3, y); v != 2 {
			t.Errorf("VertLine missing pixel at (3, %d)", y)
		}
	}
}

func TestLineDiagonal(t *testing.T) {
	bmp, _ := NewBitmap[uint8](10, 10)
	bmp.Line(0, 0, 9, 9, 5)
	for i := int32(0); i < 10; i++ {
		if v, _ := bmp.GetPixel(i, i); v != 5 {
			t.Errorf("Line missing diagonal pixel at (%d,%d)", i, i)
		}
	}
}

func TestFilledRectFillsInterior(t *testing.T) {
	bmp, _ := NewBitmap[uint8](10, 10)
	bmp.FilledRect(NewRect(2, 2, 4, 4), 3)
	for y := int32(2); y < 6; y++ {
		for x := int32(2); x < 6; x++ {
			if v, _ := bmp.GetPixel(x, y); v != 3 {
				t.Errorf("FilledRect missing pixel at (%d,%d)", x, y)
			}
		}
	}
	if v, _ := bmp.GetPixel(6, 6); v != 0 {
		t.Errorf("FilledRect overran bounds")
	}
}

func TestRectDrawsOutlineOnly(t *testing.T) {
	bmp, _ := NewBitmap[uint8](10, 10)
	bmp.Rect(NewRect(2, 2, 4, 4), 3)
	if v, _ := bmp.GetPixel(3, 3); v != 0 {
		t.Errorf("Rect outline should not fill interior, got %d at (3,3)", v)
	}
	if v, _ := bmp.GetPixel(2, 2); v != 3 {
		t.Errorf("Rect outline missing corner pixel")
	}
}

func TestFilledCircleSymmetric(t *testing.T) {
	bmp, _ := NewBitmap[uint8](21, 21)
	bmp.FilledCircle(10, 10, 5, 1)
	if v, _ := bmp.GetPixel(10, 10); v != 1 {
		t.Errorf("expected filled circle center to be set")
	}
	if v, _ := bmp.GetPixel(10, 5); v != 1 {
		t.Errorf("expected filled circle top edge to be set")
	}
	if v, _ := bmp.GetPixel(0, 0); v != 0 {
		t.Errorf("expected corner to remain unset")
	}
}

func TestCircleCustomInvokesCallback(t *testing.T) {
	bmp, _ := NewBitmap[uint8](21, 21)
	count := 0
	bmp.CircleCustom(10, 10, 5, func(x, y int32, _ uint8) uint8 {
		count++
		return 1
	})
	if count == 0 {
		t.Fatal("expected circle callback to be invoked")
	}
}
