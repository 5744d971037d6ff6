package pcd

import (
	"io"

	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
)

// ReadVec3 reads xyz of the points from PCD data.
func ReadVec3(r io.Reader) ([]mat.Vec3, error) {
	pp, err := pc.Unmarshal(r)
	if err != nil {
		return nil, err
	}
	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	out := make([]mat.Vec3, 0, it.Len())
	for ; it.IsValid(); it.Incr() {
		out = append(out, it.Vec3())
	}
	return out, nil
}
