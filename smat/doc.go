// Package smat reads graphs, candidate lists and score vectors in the plain
// text formats used by the local-graph-clustering tooling.
//
// Graph (.smat):
//
//	rows cols nnz
//	i j w        (nnz lines, zero-based, one stored entry each)
//
// Candidate ids:
//
//	count
//	id id id ...
//
// Vectors (scores, degrees): whitespace-separated floats.
//
// Files ending in .gz or .zst are decompressed transparently by Open and
// the *File helpers.
package smat
