package malloc

import "testing"

func TestPackUnpackRoundTrips(t *testing.T) {
	cases := []struct {
		size  uintptr
		alloc uintptr
	}{
		{doubleWordSize, 0},
		{doubleWordSize, 1},
		{4096, 0},
		{4096, 1},
	}
	for _, c := range cases {
		w := packWord(c.size, c.alloc)
		if got := sizeOfWord(w); got != c.size {
			t.Errorf("packWord(%d,%d): sizeOfWord = %d, want %d", c.size, c.alloc, got, c.size)
		}
		if got := allocOfWord(w); got != c.alloc {
			t.Errorf("packWord(%d,%d): allocOfWord = %d, want %d", c.size, c.alloc, got, c.alloc)
		}
	}
}

func TestAdjustSize(t *testing.T) {
	cases := []struct {
		in   uintptr
		want uintptr
	}{
		{0, 2 * doubleWordSize},
		{1, 2 * doubleWordSize},
		{doubleWordSize - 1, 2 * doubleWordSize},
		{doubleWordSize, 2 * doubleWordSize},
		{doubleWordSize + 1, 3 * doubleWordSize},
	}
	for _, c := range cases {
		if got := adjustSize(c.in); got != c.want {
			t.Errorf("adjustSize(%d) = %d, want %d", c.in, got, c.want)
		}
		if got := adjustSize(c.in); got%doubleWordSize != 0 {
			t.Errorf("adjustSize(%d) = %d not double-word aligned", c.in, got)
		}
	}
}
