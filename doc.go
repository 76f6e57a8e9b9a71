// Package sweepcut finds low-conductance clusters in graphs stored as CSR
// (compressed sparse row) arrays, by sweeping a ranked list of candidate
// vertices and keeping the best prefix.
//
// 🚀 What is sweepcut?
//
//	Local graph clustering usually ends with a sweep: rank vertices by a
//	score (a personalized PageRank vector, a heat kernel, a Fiedler vector),
//	then pick the prefix of that ranking whose cut is smallest relative to
//	its volume. sweepcut is that final step, made cheap:
//		• One pass over the candidates and their adjacency lists
//		• No copy of the graph; any integer width for ids and row offsets
//		• 0-based or 1-based vertex ids
//		• Dense or hashed rank maps for small lists on huge graphs
//
// ✨ Layout
//
//	csr/           - generic CSR graph: validation, builders, generators, gonum bridge
//	sweep/         - Order, Sweep, SweepSorted, Profile, Conductance, Batch
//	smat/          - .smat graph, id-list and vector readers (plain, gzip, zstd)
//	internal/cli/  - cobra command tree, TOML config, charm logging
//	cmd/sweepcut/  - the sweepcut binary
//
// Quick ASCII example:
//
//	0───1───2───3
//
//	sweeping 0,1,2,3 gives conductances 1, 1/3, 1, 1; the winner is {0,1}.
//
//	go install github.com/katalvlaran/sweepcut/cmd/sweepcut@latest
package sweepcut
