package expand_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/polycubes/canon"
	"github.com/katalvlaran/polycubes/expand"
	"github.com/katalvlaran/polycubes/voxel"
)

// ExpandSuite checks the Expander contract on a few base shapes.
type ExpandSuite struct {
	suite.Suite
	monomino *voxel.Grid
	domino   *voxel.Grid
	elbow    *voxel.Grid
}

func (s *ExpandSuite) SetupTest() {
	var err error
	s.monomino, err = voxel.Ones(1, 1, 1)
	s.Require().NoError(err)
	s.domino, err = voxel.Ones(2, 1, 1)
	s.Require().NoError(err)
	s.elbow, err = voxel.FromCoords([]voxel.Coord{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}})
	s.Require().NoError(err)
}

// TestFrontierSizes compares frontier sizes against hand counts.
func (s *ExpandSuite) TestFrontierSizes() {
	s.Require().Len(expand.Frontier(s.monomino), 6)
	s.Require().Len(expand.Frontier(s.domino), 10)
	// elbow: 14 free faces, the inner corner cell is reached from two of them
	s.Require().Len(expand.Frontier(s.elbow), 13)
}

func (s *ExpandSuite) TestFrontierIsEmptyAndAdjacent() {
	p := s.elbow.Pad(1)
	for _, c := range expand.Frontier(s.elbow) {
		s.Require().False(p.At(c[0], c[1], c[2]), "frontier cell %v is occupied", c)
		touches := false
		for _, d := range voxel.FaceOffsets() {
			if p.At(c[0]+d[0], c[1]+d[1], c[2]+d[2]) {
				touches = true
			}
		}
		s.Require().True(touches, "frontier cell %v has no occupied neighbour", c)
	}
}

// TestCandidatesAreGrownPolycubes checks size, tightness, connectivity and
// that each candidate still contains the base shape.
func (s *ExpandSuite) TestCandidatesAreGrownPolycubes() {
	for _, base := range []*voxel.Grid{s.monomino, s.domino, s.elbow} {
		cands := expand.All(base)
		s.Require().Len(cands, len(expand.Frontier(base)))
		for _, c := range cands {
			s.Require().Equal(base.Count()+1, c.Count())
			s.Require().True(c.IsTight())
			s.Require().True(c.IsConnected())
		}
	}
}

func (s *ExpandSuite) TestDoesNotMutateBase() {
	before := s.domino.Clone()
	for range expand.Expand(s.domino) {
	}
	s.Require().True(before.Equal(s.domino))
}

// TestDominoGrowsIntoBothTrominoes checks that the two trominoes, and only
// they, appear up to rotation.
func (s *ExpandSuite) TestDominoGrowsIntoBothTrominoes() {
	classes := make(map[canon.Key]struct{})
	for c := range expand.Expand(s.domino) {
		classes[canon.Canonical(c)] = struct{}{}
	}
	s.Require().Len(classes, 2)
}

func (s *ExpandSuite) TestDeterministicOrder() {
	a, b := expand.All(s.elbow), expand.All(s.elbow)
	s.Require().Len(b, len(a))
	for i := range a {
		s.Require().True(a[i].Equal(b[i]), "candidate %d differs between runs", i)
	}
}

func TestExpandSuite(t *testing.T) {
	suite.Run(t, new(ExpandSuite))
}

func TestExpand_StopsEarly(t *testing.T) {
	g, err := voxel.Ones(1, 1, 1)
	require.NoError(t, err)
	n := 0
	for range expand.Expand(g) {
		n++
		break
	}
	require.Equal(t, 1, n)
}
