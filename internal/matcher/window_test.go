package matcher

import "testing"

func TestWindows(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		chunk   int
		overlap int
		want    []Window
	}{
		{
			name:    "stride plus overlap",
			length:  10,
			chunk:   3,
			overlap: 2,
			want: []Window{
				{Start: 0, End: 5},
				{Start: 3, End: 8},
				{Start: 6, End: 10},
				{Start: 9, End: 10},
			},
		},
		{
			name:    "chunk covers corpus",
			length:  5,
			chunk:   8,
			overlap: 3,
			want:    []Window{{Start: 0, End: 5}},
		},
		{
			name:    "no overlap",
			length:  6,
			chunk:   2,
			overlap: 0,
			want: []Window{
				{Start: 0, End: 2},
				{Start: 2, End: 4},
				{Start: 4, End: 6},
			},
		},
		{
			name:   "empty corpus",
			length: 0,
			chunk:  4,
			want:   nil,
		},
		{
			name:    "single byte",
			length:  1,
			chunk:   4,
			overlap: 2,
			want:    []Window{{Start: 0, End: 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Windows(tt.length, tt.chunk, tt.overlap)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d windows %v, want %d %v", len(got), got, len(tt.want), tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("window[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestWindows_CoverCorpus(t *testing.T) {
	for length := 0; length <= 40; length++ {
		for chunk := 1; chunk <= 9; chunk++ {
			for overlap := 0; overlap <= 4; overlap++ {
				ws := Windows(length, chunk, overlap)

				covered := 0
				for i, w := range ws {
					if w.Start >= w.End {
						t.Fatalf("len=%d chunk=%d overlap=%d: empty window %+v", length, chunk, overlap, w)
					}
					if w.Start != i*chunk {
						t.Fatalf("len=%d chunk=%d overlap=%d: window %d starts at %d, want %d", length, chunk, overlap, i, w.Start, i*chunk)
					}
					if w.End > length {
						t.Fatalf("len=%d chunk=%d overlap=%d: window %+v past corpus end", length, chunk, overlap, w)
					}
					if w.End > covered {
						covered = w.End
					}
				}
				if covered != length {
					t.Fatalf("len=%d chunk=%d overlap=%d: covered %d bytes", length, chunk, overlap, covered)
				}
			}
		}
	}
}

func TestPlanner_Next(t *testing.T) {
	p := Plan(7, 4, 1)

	w, ok := p.Next()
	if !ok || w != (Window{Start: 0, End: 5}) {
		t.Fatalf("first window = %+v, %v", w, ok)
	}
	w, ok = p.Next()
	if !ok || w != (Window{Start: 4, End: 7}) {
		t.Fatalf("second window = %+v, %v", w, ok)
	}
	if _, ok = p.Next(); ok {
		t.Fatal("expected exhausted planner")
	}
	if _, ok = p.Next(); ok {
		t.Fatal("planner must stay exhausted")
	}
}

func TestWindow_Len(t *testing.T) {
	if got := (Window{Start: 3, End: 11}).Len(); got != 8 {
		t.Errorf("Len() = %d, want 8", got)
	}
}
