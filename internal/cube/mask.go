package cube

// Mask marks which stickers of a face-packed cube are "significant" for
// comparison: a significant nibble is 0xF, a "don't-care" nibble is 0x0.
// Masked(cube, mask) bitwise-ANDs the cube against the mask; two cubes
// masked by the same mask compare equal iff they agree on every
// significant sticker.
type Mask struct {
	Faces [numFaces]uint64
}

func maskFromPositions(positions []int) Mask {
	var facelets [54]uint64
	for _, p := range positions {
		facelets[p] = 0xF
	}
	var m Mask
	for f := 0; f < numFaces; f++ {
		var word uint64
		for i := 0; i < 9; i++ {
			word |= facelets[f*9+i] << uint(4*i)
		}
		m.Faces[f] = word
	}
	return m
}

// Masked returns a cube-shaped value whose significant slots (per mask)
// carry the original sticker values and whose don't-care slots are zero.
func Masked(pc PackedCube, m Mask) PackedCube {
	var out PackedCube
	for f := 0; f < numFaces; f++ {
		out.Faces[f] = pc.Faces[f] & m.Faces[f]
	}
	return out
}

var crossPositions = unionPositions(
	[]int{centerFacelet[D]},
	edgeFacelet[eDF][:], edgeFacelet[eDL][:], edgeFacelet[eDB][:], edgeFacelet[eDR][:],
)

// CrossMask is significant on the four bottom-layer edges (both stickers
// each) plus the D center.
var CrossMask = maskFromPositions(crossPositions)

// F2LSlot identifies one of the four corner/edge pairs of the middle layer.
type F2LSlot int

const (
	SlotFR F2LSlot = iota
	SlotFL
	SlotBL
	SlotBR
	numF2LSlots = 4

	// NumF2LSlots is the size of the closed F2L slot enum (4).
	NumF2LSlots = numF2LSlots
)

var slotCorner = [numF2LSlots]int{SlotFR: cDFR, SlotFL: cDLF, SlotBL: cDBL, SlotBR: cDRB}
var slotEdge = [numF2LSlots]int{SlotFR: eFR, SlotFL: eFL, SlotBL: eBL, SlotBR: eBR}

// F2LSlotMask is CrossMask plus the corner and edge of the given slot.
var F2LSlotMask [numF2LSlots]Mask

func init() {
	for s := F2LSlot(0); s < numF2LSlots; s++ {
		F2LSlotMask[s] = maskFromPositions(unionPositions(
			crossPositions,
			cornerFacelet[slotCorner[s]][:],
			edgeFacelet[slotEdge[s]][:],
		))
	}
}

var llPositions = unionPositions(
	rangePositions(0, 9),
	rangePositions(9, 12), rangePositions(18, 21), rangePositions(27, 30), rangePositions(36, 39),
)

// LLMask is significant on every last-layer-visible sticker: the whole U
// face plus the top row of each side face.
var LLMask = maskFromPositions(llPositions)

// F2LMask is the complement of LLMask: every sticker that must still equal
// the solved cube once F2L is complete. Used both to filter 1LLL BFS
// children to states that keep F2L solved and to check the post-generation
// validation property.
var F2LMask Mask

func init() {
	seen := make(map[int]bool, len(llPositions))
	for _, p := range llPositions {
		seen[p] = true
	}
	var rest []int
	for p := 0; p < 54; p++ {
		if !seen[p] {
			rest = append(rest, p)
		}
	}
	F2LMask = maskFromPositions(rest)
}

func unionPositions(groups ...[]int) []int {
	var out []int
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func rangePositions(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for p := lo; p < hi; p++ {
		out = append(out, p)
	}
	return out
}
