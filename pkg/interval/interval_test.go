package interval

import "testing"

func TestContains(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		min     float64
		max     float64
		closure Closure
		want    bool
	}{
		{"left includes min", 0, 0, 360, Left, true},
		{"left excludes max", 360, 0, 360, Left, false},
		{"left interior", 180, 0, 360, Left, true},
		{"left below min", -0.5, 0, 360, Left, false},

		{"right excludes min", 0, 0, 360, Right, false},
		{"right includes max", 360, 0, 360, Right, true},

		{"both includes min", -90, -90, 90, Both, true},
		{"both includes max", 90, -90, 90, Both, true},
		{"both above max", 90.0001, -90, 90, Both, false},

		{"open excludes min", -90, -90, 90, Open, false},
		{"open excludes max", 90, -90, 90, Open, false},
		{"open interior", 0, -90, 90, Open, true},

		{"unknown closure never contains", 0, -1, 1, Closure("bogus"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.v, tt.min, tt.max, tt.closure); got != tt.want {
				t.Errorf("Contains(%v, %v, %v, %q) = %v, want %v",
					tt.v, tt.min, tt.max, tt.closure, got, tt.want)
			}
		})
	}
}

func TestContainsAll(t *testing.T) {
	if !ContainsAll(nil, 0, 360, Left) {
		t.Error("empty column should be vacuously contained")
	}
	if !ContainsAll([]float64{0, 10.5, 359.99}, 0, 360, Left) {
		t.Error("in-bound values reported out of bound")
	}
	if ContainsAll([]float64{0, 360}, 0, 360, Left) {
		t.Error("360 should violate the [0, 360) convention")
	}
	if !ContainsAll([]float64{-90, 0, 90}, -90, 90, Both) {
		t.Error("closed interval should include both ends")
	}
}

func TestClosureIsValid(t *testing.T) {
	for _, c := range []Closure{Left, Right, Both, Open} {
		if !c.IsValid() {
			t.Errorf("IsValid(%q) = false", c)
		}
	}
	if Closure("half").IsValid() {
		t.Error("IsValid(half) = true, want false")
	}
}

func TestClosureString(t *testing.T) {
	if got := Left.String(); got != "[min, max)" {
		t.Errorf("Left.String() = %q", got)
	}
	if got := Both.String(); got != "[min, max]" {
		t.Errorf("Both.String() = %q", got)
	}
}
