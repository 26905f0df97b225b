package engine

import (
	"unsafe"

	"github.com/dylhunn/dragontoothmg"
)

// Bound flags for stored scores.
const (
	AlphaFlag int8 = iota
	BetaFlag
	ExactFlag
)

const (
	ttSizeMB    = 64
	clusterSize = 4
)

type TTEntry struct {
	Hash  uint64
	Move  dragontoothmg.Move
	Score int32
	Depth int8
	Flag  int8
}

type TransTable struct {
	entries      []TTEntry
	clusterCount uint64
}

func (tt *TransTable) init(sizeMB int) {
	entrySize := uint64(unsafe.Sizeof(TTEntry{}))
	clusterCount := uint64(sizeMB) * 1024 * 1024 / (entrySize * clusterSize)
	if clusterCount == 0 {
		clusterCount = 1
	}
	tt.clusterCount = clusterCount
	tt.entries = make([]TTEntry, clusterCount*clusterSize)
}

func (tt *TransTable) clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// probe returns the stored move for the position, if any, plus a score that
// can be used as a cutoff when the entry is deep enough and its bound
// applies. Mate scores are re-anchored to the probing ply.
func (tt *TransTable) probe(hash uint64, depth int8, alpha, beta int32, ply int8) (move dragontoothmg.Move, usable bool, score int32) {
	base := int(hash % tt.clusterCount * clusterSize)
	for i := 0; i < clusterSize; i++ {
		entry := &tt.entries[base+i]
		if entry.Hash != hash {
			continue
		}
		move = entry.Move
		if entry.Depth < depth {
			return move, false, 0
		}
		norm := entry.Score
		if norm > Checkmate {
			norm -= int32(ply)
		} else if norm < -Checkmate {
			norm += int32(ply)
		}
		switch entry.Flag {
		case ExactFlag:
			return move, true, norm
		case AlphaFlag:
			if norm <= alpha {
				return move, true, alpha
			}
		case BetaFlag:
			if norm >= beta {
				return move, true, beta
			}
		}
		return move, false, 0
	}
	return 0, false, 0
}

// store replaces within the cluster: the slot already holding this hash,
// else an empty slot, else the shallowest entry.
func (tt *TransTable) store(hash uint64, depth int8, ply int8, move dragontoothmg.Move, score int32, flag int8) {
	base := int(hash % tt.clusterCount * clusterSize)

	// Mate scores are stored relative to the root.
	if score > Checkmate {
		score += int32(ply)
	} else if score < -Checkmate {
		score -= int32(ply)
	}

	target := -1
	for i := 0; i < clusterSize; i++ {
		if tt.entries[base+i].Hash == hash {
			target = base + i
			break
		}
	}
	if target == -1 {
		for i := 0; i < clusterSize; i++ {
			if tt.entries[base+i].Hash == 0 {
				target = base + i
				break
			}
		}
	}
	if target == -1 {
		target = base
		for i := 1; i < clusterSize; i++ {
			if tt.entries[base+i].Depth < tt.entries[target].Depth {
				target = base + i
			}
		}
	}

	entry := &tt.entries[target]
	entry.Hash = hash
	entry.Depth = depth
	entry.Move = move
	entry.Score = score
	entry.Flag = flag
}
