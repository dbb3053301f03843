package pathbool

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestContainsSquare(t *testing.T) {
	square := Rectangle(1.0, 2.0, 8.0, 6.0)
	var tts = []struct {
		p  Point
		in bool
	}{
		{Point{5.0, 5.0}, true},
		{Point{2.0, 3.5}, true},
		{Point{8.9, 7.9}, true},
		{Point{5.0, 2.0}, true}, // on the bottom edge
		{Point{1.0, 4.0}, true}, // on the left edge
		{Point{0.0, 0.0}, false},
		{Point{10.0, 10.0}, false},
		{Point{5.0, 1.0}, false},
		{Point{5.0, 9.0}, false},
		{Point{0.0, 5.0}, false},
		{Point{10.0, 5.0}, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Contains(square, tt.p), tt.in)
		})
	}
}

func TestContainsCircle(t *testing.T) {
	circle := Circle{Point{5.0, 5.0}, 4.0}.Path()
	var tts = []struct {
		p  Point
		in bool
	}{
		{Point{5.0, 5.0}, true},
		{Point{3.0, 4.0}, true},
		{Point{7.0, 7.0}, true},
		{Point{8.0, 5.0}, true},
		{Point{5.0, 1.2}, true},
		{Point{8.5, 8.5}, false}, // inside the bounding box, outside the circle
		{Point{1.5, 1.5}, false},
		{Point{1.3, 8.7}, false},
		{Point{5.0, 0.5}, false},
		{Point{-1.0, 5.0}, false},
		{Point{12.0, 5.0}, false},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Contains(circle, tt.p), tt.in)
		})
	}
}

func TestContainsSubtractionResult(t *testing.T) {
	// the cut corner is no longer inside
	square1 := Rectangle(1.0, 1.0, 4.0, 4.0)
	square2 := Rectangle(4.0, 4.0, 2.0, 2.0)
	loops := Subtract(paths(square1), paths(square2), 0.01)
	test.T(t, len(loops), 1)

	test.That(t, Contains(loops[0], Point{2.0, 2.0}))
	test.That(t, Contains(loops[0], Point{4.5, 2.0}))
	test.That(t, !Contains(loops[0], Point{4.7, 4.7}))
	test.That(t, !Contains(loops[0], Point{5.5, 5.5}))
}
