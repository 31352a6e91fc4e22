package img

import "testing"

func TestBlockSpecsCoversWholePlane(t *testing.T) {
	specs := blockSpecs(20, 10, 8)
	var covered int
	for _, s := range specs {
		covered += s.rows * s.cols
	}
	if covered != 20*10 {
		t.Errorf("total covered area = %d, want %d", covered, 20*10)
	}
}

func TestBlockSpecsEdgeBlocksClipped(t *testing.T) {
	specs := blockSpecs(20, 10, 8)
	found := false
	for _, s := range specs {
		if s.offsetRow == 16 {
			found = true
			if s.rows != 4 {
				t.Errorf("edge block rows = %d, want 4 (20 - 16)", s.rows)
			}
		}
	}
	if !found {
		t.Fatal("no block found at offsetRow 16")
	}
}

func TestExtractBlockZeroFillsPastEdge(t *testing.T) {
	plane := makeTestPlane(3, 3)
	block := extractBlock(plane, 0, 0, 4)
	if block.Rows() != 4 || block.Cols() != 4 {
		t.Fatalf("extractBlock dims = (%d,%d), want (4,4)", block.Rows(), block.Cols())
	}
	if block.At(3, 3) != 0 {
		t.Errorf("At(3,3) = %v, want 0 (outside source plane)", block.At(3, 3))
	}
	if block.At(0, 0) != plane.At(0, 0) {
		t.Errorf("At(0,0) = %v, want %v", block.At(0, 0), plane.At(0, 0))
	}
}
