package cube

// Corner position/piece labels, in the conventional order used by the
// facelet correspondence in facelet.go.
const (
	cURF = iota
	cUFL
	cULB
	cUBR
	cDFR
	cDLF
	cDBL
	cDRB
	numCorners = 8
)

// Edge position/piece labels.
const (
	eUR = iota
	eUF
	eUL
	eUB
	eDR
	eDF
	eDL
	eDB
	eFR
	eFL
	eBL
	eBR
	numEdges = 12
)

// cubieDelta is the permutation-and-orientation effect of applying one move
// to a solved cube: cp[i]/ep[i] names which position's piece ends up at
// position i, and co[i]/eo[i] is the orientation delta added at position i.
type cubieDelta struct {
	cp [numCorners]int8
	co [numCorners]int8
	ep [numEdges]int8
	eo [numEdges]int8
}

// composeCubieDelta composes a (applied first) with b (applied second):
// result describes applying a, then b, to a solved cube.
func composeCubieDelta(a, b cubieDelta) cubieDelta {
	var c cubieDelta
	for i := 0; i < numCorners; i++ {
		c.cp[i] = a.cp[b.cp[i]]
		c.co[i] = (a.co[b.cp[i]] + b.co[i]) % 3
	}
	for i := 0; i < numEdges; i++ {
		c.ep[i] = a.ep[b.ep[i]]
		c.eo[i] = (a.eo[b.ep[i]] + b.eo[i]) % 2
	}
	return c
}

// baseClockwiseDelta holds the effect of one clockwise quarter turn of each
// face, applied to a solved cube. This is the standard corner/edge
// permutation-and-orientation correspondence reproduced by essentially every
// 3x3 cube engine; the packed-cube move kernel is derived from these same
// tables at init time rather than hand-derived independently.
var baseClockwiseDelta = [numFaces]cubieDelta{
	U: {
		cp: [numCorners]int8{cUBR, cURF, cUFL, cULB, cDFR, cDLF, cDBL, cDRB},
		co: [numCorners]int8{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [numEdges]int8{eUB, eUR, eUF, eUL, eDR, eDF, eDL, eDB, eFR, eFL, eBL, eBR},
		eo: [numEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	R: {
		cp: [numCorners]int8{cDFR, cUFL, cULB, cURF, cDRB, cDLF, cDBL, cUBR},
		co: [numCorners]int8{2, 0, 0, 1, 1, 0, 0, 2},
		ep: [numEdges]int8{eFR, eUF, eUL, eUB, eBR, eDF, eDL, eDB, eDR, eFL, eBL, eUR},
		eo: [numEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	F: {
		cp: [numCorners]int8{cUFL, cDLF, cULB, cUBR, cURF, cDFR, cDBL, cDRB},
		co: [numCorners]int8{1, 2, 0, 0, 2, 1, 0, 0},
		ep: [numEdges]int8{eUR, eFL, eUL, eUB, eDR, eFR, eDL, eDB, eUF, eDF, eBL, eBR},
		eo: [numEdges]int8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	L: {
		cp: [numCorners]int8{cURF, cULB, cDBL, cUBR, cDFR, cUFL, cDLF, cDRB},
		co: [numCorners]int8{0, 1, 2, 0, 0, 2, 1, 0},
		ep: [numEdges]int8{eUR, eUF, eBL, eUB, eDR, eDF, eFL, eDB, eFR, eUL, eDL, eBR},
		eo: [numEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	B: {
		cp: [numCorners]int8{cURF, cUFL, cUBR, cDRB, cDFR, cDLF, cULB, cDBL},
		co: [numCorners]int8{0, 0, 1, 2, 0, 0, 2, 1},
		ep: [numEdges]int8{eUR, eUF, eUL, eBR, eDR, eDF, eDL, eBL, eFR, eFL, eUB, eDB},
		eo: [numEdges]int8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
	D: {
		cp: [numCorners]int8{cURF, cUFL, cULB, cUBR, cDLF, cDBL, cDRB, cDFR},
		co: [numCorners]int8{0, 0, 0, 0, 0, 0, 0, 0},
		ep: [numEdges]int8{eUR, eUF, eUL, eUB, eDF, eDL, eDB, eDR, eFR, eFL, eBL, eBR},
		eo: [numEdges]int8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
}

var identityDelta = cubieDelta{
	cp: [numCorners]int8{cURF, cUFL, cULB, cUBR, cDFR, cDLF, cDBL, cDRB},
	ep: [numEdges]int8{eUR, eUF, eUL, eUB, eDR, eDF, eDL, eDB, eFR, eFL, eBL, eBR},
}

// moveDelta[m] is the cubieDelta for move m (quarter, half or 3/4 turn).
var moveDelta [numMoves]cubieDelta

func init() {
	for f := Face(0); f < numFaces; f++ {
		cw := baseClockwiseDelta[f]
		half := composeCubieDelta(cw, cw)
		ccw := composeCubieDelta(half, cw)
		moveDelta[MoveOf(f, 1)] = cw
		moveDelta[MoveOf(f, 2)] = half
		moveDelta[MoveOf(f, 3)] = ccw
	}
}
