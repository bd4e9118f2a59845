package cube

// Facelet positions are numbered 0-53, nine per face in face order
// U,R,F,L,B,D (band = position/9, local = position%9), each face's own nine
// positions laid out row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// cornerFacelet[p] and edgeFacelet[p] give the fixed facelet positions
// occupied by the piece at cubie position p, in solved orientation (slot 0
// first). This is the standard facelet/cubie correspondence used to derive
// the face-packed move kernel from the cubie move tables and to convert
// between the two representations.
var cornerFacelet = [numCorners][3]int{
	cURF: {8, 9, 20},
	cUFL: {6, 18, 29},
	cULB: {0, 27, 38},
	cUBR: {2, 36, 11},
	cDFR: {47, 26, 15},
	cDLF: {45, 35, 24},
	cDBL: {51, 44, 33},
	cDRB: {53, 17, 42},
}

var edgeFacelet = [numEdges][2]int{
	eUR: {5, 10},
	eUF: {7, 19},
	eUL: {3, 28},
	eUB: {1, 37},
	eDR: {50, 16},
	eDF: {46, 25},
	eDL: {48, 34},
	eDB: {52, 43},
	eFR: {23, 12},
	eFL: {21, 32},
	eBL: {41, 30},
	eBR: {39, 14},
}

var centerFacelet = [numFaces]int{4, 13, 22, 31, 40, 49}

// cornerSig[p][k] / edgeSig[p][k] are the solved-state face colors at each
// piece's slots, used by ToCubie to identify which piece (and rotation)
// occupies an observed set of facelets.
var cornerSig [numCorners][3]Face
var edgeSig [numEdges][2]Face

// packedMovePerm[m][p] is the facelet position that supplies the new value
// of position p after move m; built once at init from the cubie move
// deltas so the packed and cubie kernels agree by construction.
var packedMovePerm [numMoves][54]int

func init() {
	for p := 0; p < numCorners; p++ {
		for k := 0; k < 3; k++ {
			cornerSig[p][k] = Face(cornerFacelet[p][k] / 9)
		}
	}
	for p := 0; p < numEdges; p++ {
		for k := 0; k < 2; k++ {
			edgeSig[p][k] = Face(edgeFacelet[p][k] / 9)
		}
	}

	for m := Move(0); m < numMoves; m++ {
		d := moveDelta[m]
		var perm [54]int
		for p := 0; p < 54; p++ {
			perm[p] = p
		}
		for i := 0; i < numCorners; i++ {
			for k := 0; k < 3; k++ {
				src := cornerFacelet[d.cp[i]][(k-int(d.co[i])+3)%3]
				perm[cornerFacelet[i][k]] = src
			}
		}
		for i := 0; i < numEdges; i++ {
			for k := 0; k < 2; k++ {
				src := edgeFacelet[d.ep[i]][(k-int(d.eo[i])+2)%2]
				perm[edgeFacelet[i][k]] = src
			}
		}
		// centers are fixed by every move.
		packedMovePerm[m] = perm
	}
}

// ToPacked reconstructs the face-packed representation of a cubie cube.
func ToPacked(cc CubieCube) PackedCube {
	var facelets [54]Face
	for i := 0; i < numCorners; i++ {
		for k := 0; k < 3; k++ {
			facelets[cornerFacelet[i][k]] = cornerSig[cc.CP[i]][(k-int(cc.CO[i])+3)%3]
		}
	}
	for i := 0; i < numEdges; i++ {
		for k := 0; k < 2; k++ {
			facelets[edgeFacelet[i][k]] = edgeSig[cc.EP[i]][(k-int(cc.EO[i])+2)%2]
		}
	}
	for f := 0; f < numFaces; f++ {
		facelets[centerFacelet[f]] = Face(f)
	}
	return packFacelets(facelets)
}

// ToCubie reconstructs the cubie representation from a face-packed cube.
func ToCubie(pc PackedCube) CubieCube {
	facelets := pc.unpack()
	var cc CubieCube
	for i := 0; i < numCorners; i++ {
		o := [3]Face{facelets[cornerFacelet[i][0]], facelets[cornerFacelet[i][1]], facelets[cornerFacelet[i][2]]}
		piece, rot := matchCorner(o)
		cc.CP[i] = int8(piece)
		cc.CO[i] = int8(rot)
	}
	for i := 0; i < numEdges; i++ {
		o := [2]Face{facelets[edgeFacelet[i][0]], facelets[edgeFacelet[i][1]]}
		piece, rot := matchEdge(o)
		cc.EP[i] = int8(piece)
		cc.EO[i] = int8(rot)
	}
	return cc
}

func matchCorner(observed [3]Face) (piece, rot int) {
	for p := 0; p < numCorners; p++ {
		for r := 0; r < 3; r++ {
			if cornerSig[p][(3-r)%3] == observed[0] &&
				cornerSig[p][(4-r)%3] == observed[1] &&
				cornerSig[p][(5-r)%3] == observed[2] {
				return p, r
			}
		}
	}
	panic("cube: observed facelets do not match any corner piece")
}

func matchEdge(observed [2]Face) (piece, rot int) {
	for p := 0; p < numEdges; p++ {
		for r := 0; r < 2; r++ {
			if edgeSig[p][(2-r)%2] == observed[0] && edgeSig[p][(3-r)%2] == observed[1] {
				return p, r
			}
		}
	}
	panic("cube: observed facelets do not match any edge piece")
}
