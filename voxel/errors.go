package voxel

import "errors"

var (
	// ErrBadShape indicates a requested dimension is smaller than 1.
	ErrBadShape = errors.New("voxel: every dimension must be at least 1")
	// ErrEmptyGrid indicates a grid without any occupied cell where one is required.
	ErrEmptyGrid = errors.New("voxel: grid has no occupied cells")
	// ErrOutOfRange indicates a coordinate outside the grid bounds.
	ErrOutOfRange = errors.New("voxel: coordinate out of range")
	// ErrCellCount indicates a cell slice whose length does not match X·Y·Z.
	ErrCellCount = errors.New("voxel: cell count does not match dimensions")
)
