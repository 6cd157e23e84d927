package download

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTransferState_Advance(t *testing.T) {
	testCases := []struct {
		name   string
		total  int64
		chunks []int
		exp    []int
	}{
		{name: "exact buckets", total: 4, chunks: []int{1, 1, 1, 1}, exp: []int{25, 50, 75, 100}},
		{name: "sub percent chunks", total: 1000, chunks: []int{1, 4, 5, 5, 985}, exp: []int{0, 1, 100}},
		{name: "unknown total", total: -1, chunks: []int{10, 10, 10}, exp: []int{100, 100, 100}},
		{name: "zero total", total: 0, chunks: []int{3, 3}, exp: []int{100, 100}},
		{name: "overrun is capped", total: 2, chunks: []int{1, 5}, exp: []int{50, 100}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTransferState("/x", tc.total)

			var got []int
			for _, n := range tc.chunks {
				if p, due := s.advance(n); due {
					got = append(got, p)
				}
			}

			if diff := cmp.Diff(tc.exp, got); diff != "" {
				t.Errorf("reports mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransferState_UnknownTotalReportsBytes(t *testing.T) {
	s := newTransferState("/x", -1)

	var reads []int64
	for range 40 {
		if p, due := s.advance(4096); due {
			if p != 100 {
				t.Fatalf("expected percent 100 without a total, got %d", p)
			}
			reads = append(reads, s.read)
		}
	}

	if len(reads) != 40 {
		t.Fatalf("expected a report per chunk, got %d", len(reads))
	}
	for i, r := range reads {
		if exp := int64(i+1) * 4096; r != exp {
			t.Errorf("report %d: read %d, want %d", i, r, exp)
		}
	}
}
