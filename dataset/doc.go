// Package dataset turns edge-list text files into a core.Graph.
//
// Format
//
//	# Directed graph: web-Google.txt          <- optional comment header
//	# FromNodeId	ToNodeId
//	0	11342
//	0,824020                                  <- commas are accepted as separators
//	7 12 4                                    <- Labeled only: third column is the cost
//
// Leading lines containing '#' form the header; DetectKind classifies it
// (Directed / Undirected markers, Labeled otherwise). After the first data line
// every line is data: "1 2 # bridge" is the edge 1→2. A Labeled cost that is not
// an integer reads as 0, a negative one makes the line malformed. Malformed lines
// are skipped and counted in Stats.Skipped; loading fails only on I/O errors and
// on a state id beyond Options.MaxStates.
//
// Compression
//
//	LoadFile sniffs the gzip magic bytes, so both "graph.txt" and "graph.txt.gz"
//	(the SNAP distribution format) load through the same call.
//
// Errors:
//
//	ErrEmptyPath     - LoadFile was called with an empty path.
//	ErrTooManyStates - a data line names a state at or beyond Options.MaxStates.
//	wrapped I/O errors from opening, decompressing or scanning the input.
package dataset
