package pcd

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestReadVec3(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString(`VERSION 0.7
FIELDS x y z
SIZE 4 4 4
TYPE F F F
COUNT 1 1 1
WIDTH 3
HEIGHT 1
VIEWPOINT 0 0 0 1 0 0 0
POINTS 3
DATA binary
`)
	expected := []mat.Vec3{
		{10.1, -20.2, 3.3},
		{1.1, 2.2, 4.3},
		{15.1, 21.2, 0.3},
	}
	for _, v := range expected {
		if err := binary.Write(&buf, binary.LittleEndian, [3]float32(v)); err != nil {
			t.Fatal(err)
		}
	}

	vs, err := ReadVec3(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(vs) != len(expected) {
		t.Fatalf("Expected %d points, has %d points", len(expected), len(vs))
	}
	for i, v := range expected {
		if !v.Equal(vs[i]) {
			t.Errorf("Expected %v, got %v at %d", v, vs[i], i)
		}
	}
}

func TestReadVec3_Invalid(t *testing.T) {
	if _, err := ReadVec3(bytes.NewReader([]byte("FIELDS\n"))); err == nil {
		t.Error("Expected error")
	}
}
