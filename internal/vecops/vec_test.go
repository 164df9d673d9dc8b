package vecops

import "testing"

func TestNumLanes(t *testing.T) {
	cases := []struct {
		name string
		got  int
		want int
	}{
		{"int8", NumLanes[int8](), 64},
		{"int16", NumLanes[int16](), 32},
		{"int32", NumLanes[int32](), 16},
		{"float32", NumLanes[float32](), 16},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("NumLanes[%s]() = %d, want %d", c.name, c.got, c.want)
		}
	}
}

func TestLoadZeroPadsShortSlice(t *testing.T) {
	v := Load[int32]([]int32{1, 2, 3})
	if v.Len() != NumLanes[int32]() {
		t.Fatalf("Len() = %d, want %d", v.Len(), NumLanes[int32]())
	}
	if v.At(0) != 1 || v.At(1) != 2 || v.At(2) != 3 {
		t.Fatalf("first three lanes = %d,%d,%d, want 1,2,3", v.At(0), v.At(1), v.At(2))
	}
	for i := 3; i < v.Len(); i++ {
		if v.At(i) != 0 {
			t.Errorf("lane %d = %d, want 0 (zero padding)", i, v.At(i))
		}
	}
}

func TestStoreTruncates(t *testing.T) {
	v := Set[int32](7)
	dst := make([]int32, 3)
	Store(v, dst)
	for i, x := range dst {
		if x != 7 {
			t.Errorf("dst[%d] = %d, want 7", i, x)
		}
	}
}

func TestMulAdd(t *testing.T) {
	a := Set[int32](2)
	b := Load[int32]([]int32{1, 2, 3, 4})
	c := Load[int32]([]int32{10, 10, 10, 10})
	got := MulAdd(a, b, c)
	want := []int32{12, 14, 16, 18}
	for i, w := range want {
		if got.At(i) != w {
			t.Errorf("MulAdd lane %d = %d, want %d", i, got.At(i), w)
		}
	}
}

func TestSubAndAdd(t *testing.T) {
	a := Load[float32]([]float32{5, 5, 5})
	b := Load[float32]([]float32{2, 3, 4})
	sum := Add(a, b)
	diff := Sub(a, b)
	if sum.At(0) != 7 || sum.At(1) != 8 || sum.At(2) != 9 {
		t.Errorf("Add = %v,%v,%v, want 7,8,9", sum.At(0), sum.At(1), sum.At(2))
	}
	if diff.At(0) != 3 || diff.At(1) != 2 || diff.At(2) != 1 {
		t.Errorf("Sub = %v,%v,%v, want 3,2,1", diff.At(0), diff.At(1), diff.At(2))
	}
}
