// Package layout arranges the boxes of a container.
//
// A coordinator receives repack notifications on its RepackEvent stream:
// once for every pointer-move of a dragged box and once more when the drag
// ends. It decides where every other box goes. It must never write the
// committed position of a box whose transient offset is authoritative (a
// box that is still being dragged); that box's place is owned by its drag
// controller until the drag ends.
//
// [Grid] is the reference coordinator. It flow-packs visible boxes in Index
// order into rows that fit the container width:
//
//	+----+ +--------+ +--+
//	| 0  | |   1    | |2 |
//	+----+ +--------+ +--+
//	+------+ +---+
//	|  3   | | 4 |
//	+------+ +---+
//
// While a box is dragged, Grid moves it to the slot nearest to where it is
// shown and re-packs the siblings live. When the drag ends, the box snaps
// into its slot.
package layout
