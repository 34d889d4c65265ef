// Package grid implements a 2D tile board on top of flat tensor storage.
//
// A Board keeps two linearized tensors: a tile tensor (height x width x 2)
// holding each tile's type and occupant, and a transition tensor
// (height x width x 16) holding, for each tile and each of the eight
// directions, the destination position and the incoming direction of the
// outgoing transition. Storing transitions explicitly trades memory for O(1)
// "pointer-like" navigation, which is what the ray traversal needs.
//
// Positions are encoded as int16 values pos = y*width + x. Multiplying a
// position by a tensor's depth yields the linear offset of that tile's first
// entry, so position-based access never recomputes 2D coordinates.
package grid
