package scene

// PlacementEntry places one tree of the forest.
type PlacementEntry struct {
	X, Z        float32
	TrunkHeight float32
	ConeHeight  float32
}

// Forest is the fixed tree layout of the world, drawn in this order.
var Forest = []PlacementEntry{
	{X: -45, Z: -40, TrunkHeight: 2, ConeHeight: 3},
	{X: -42, Z: -35, TrunkHeight: 2, ConeHeight: 3},
	{X: -39, Z: -29, TrunkHeight: 2, ConeHeight: 4},
	{X: -44, Z: -26, TrunkHeight: 3, ConeHeight: 3},
	{X: -40, Z: -22, TrunkHeight: 2, ConeHeight: 4},
	{X: -36, Z: -15, TrunkHeight: 3, ConeHeight: 3},
	{X: -41, Z: -11, TrunkHeight: 2, ConeHeight: 3},
	{X: -37, Z: -6, TrunkHeight: 3, ConeHeight: 3},
	{X: -45, Z: 0, TrunkHeight: 2, ConeHeight: 3},
	{X: -39, Z: 4, TrunkHeight: 3, ConeHeight: 4},
	{X: -36, Z: 8, TrunkHeight: 2, ConeHeight: 3},
	{X: -44, Z: 13, TrunkHeight: 3, ConeHeight: 3},
	{X: -42, Z: 17, TrunkHeight: 2, ConeHeight: 3},
	{X: -38, Z: 23, TrunkHeight: 3, ConeHeight: 4},
	{X: -41, Z: 27, TrunkHeight: 2, ConeHeight: 3},
	{X: -39, Z: 32, TrunkHeight: 3, ConeHeight: 3},
	{X: -44, Z: 37, TrunkHeight: 3, ConeHeight: 4},
	{X: -36, Z: 42, TrunkHeight: 2, ConeHeight: 3},

	{X: -32, Z: -45, TrunkHeight: 2, ConeHeight: 3},
	{X: -30, Z: -42, TrunkHeight: 2, ConeHeight: 4},
	{X: -34, Z: -38, TrunkHeight: 3, ConeHeight: 5},
	{X: -33, Z: -35, TrunkHeight: 3, ConeHeight: 4},
	{X: -29, Z: -28, TrunkHeight: 2, ConeHeight: 3},
	{X: -26, Z: -25, TrunkHeight: 3, ConeHeight: 5},
	{X: -35, Z: -21, TrunkHeight: 3, ConeHeight: 4},
	{X: -31, Z: -17, TrunkHeight: 3, ConeHeight: 3},
	{X: -28, Z: -12, TrunkHeight: 2, ConeHeight: 4},
	{X: -29, Z: -7, TrunkHeight: 3, ConeHeight: 3},
	{X: -26, Z: -1, TrunkHeight: 2, ConeHeight: 4},
	{X: -32, Z: 6, TrunkHeight: 2, ConeHeight: 3},
	{X: -30, Z: 10, TrunkHeight: 3, ConeHeight: 5},
	{X: -33, Z: 14, TrunkHeight: 2, ConeHeight: 4},
	{X: -35, Z: 19, TrunkHeight: 3, ConeHeight: 4},
	{X: -28, Z: 22, TrunkHeight: 2, ConeHeight: 3},
	{X: -33, Z: 26, TrunkHeight: 3, ConeHeight: 3},
	{X: -29, Z: 31, TrunkHeight: 3, ConeHeight: 4},
	{X: -32, Z: 38, TrunkHeight: 2, ConeHeight: 3},
	{X: -27, Z: 41, TrunkHeight: 3, ConeHeight: 4},
	{X: -31, Z: 45, TrunkHeight: 2, ConeHeight: 4},
	{X: -28, Z: 48, TrunkHeight: 3, ConeHeight: 5},

	{X: -25, Z: -48, TrunkHeight: 2, ConeHeight: 3},
	{X: -20, Z: -42, TrunkHeight: 3, ConeHeight: 4},
	{X: -22, Z: -39, TrunkHeight: 2, ConeHeight: 3},
	{X: -19, Z: -34, TrunkHeight: 2, ConeHeight: 3},
	{X: -23, Z: -30, TrunkHeight: 3, ConeHeight: 4},
	{X: -24, Z: -24, TrunkHeight: 2, ConeHeight: 3},
	{X: -16, Z: -21, TrunkHeight: 2, ConeHeight: 3},
	{X: -17, Z: -17, TrunkHeight: 3, ConeHeight: 3},
	{X: -25, Z: -13, TrunkHeight: 2, ConeHeight: 4},
	{X: -23, Z: -8, TrunkHeight: 2, ConeHeight: 3},
	{X: -17, Z: -2, TrunkHeight: 3, ConeHeight: 3},
	{X: -16, Z: 1, TrunkHeight: 2, ConeHeight: 3},
	{X: -19, Z: 4, TrunkHeight: 3, ConeHeight: 3},
	{X: -22, Z: 8, TrunkHeight: 2, ConeHeight: 4},
	{X: -21, Z: 14, TrunkHeight: 2, ConeHeight: 3},
	{X: -16, Z: 19, TrunkHeight: 2, ConeHeight: 3},
	{X: -23, Z: 24, TrunkHeight: 3, ConeHeight: 3},
	{X: -18, Z: 28, TrunkHeight: 2, ConeHeight: 4},
	{X: -24, Z: 31, TrunkHeight: 2, ConeHeight: 3},
	{X: -20, Z: 36, TrunkHeight: 2, ConeHeight: 3},
	{X: -22, Z: 41, TrunkHeight: 3, ConeHeight: 3},
	{X: -21, Z: 45, TrunkHeight: 2, ConeHeight: 3},

	{X: -12, Z: -40, TrunkHeight: 2, ConeHeight: 4},
	{X: -11, Z: -35, TrunkHeight: 3, ConeHeight: 3},
	{X: -10, Z: -29, TrunkHeight: 1, ConeHeight: 3},
	{X: -9, Z: -26, TrunkHeight: 2, ConeHeight: 2},
	{X: -6, Z: -22, TrunkHeight: 2, ConeHeight: 3},
	{X: -15, Z: -15, TrunkHeight: 1, ConeHeight: 3},
	{X: -8, Z: -11, TrunkHeight: 2, ConeHeight: 3},
	{X: -14, Z: -6, TrunkHeight: 2, ConeHeight: 4},
	{X: -12, Z: 0, TrunkHeight: 2, ConeHeight: 3},
	{X: -7, Z: 4, TrunkHeight: 2, ConeHeight: 2},
	{X: -13, Z: 8, TrunkHeight: 2, ConeHeight: 2},
	{X: -9, Z: 13, TrunkHeight: 1, ConeHeight: 3},
	{X: -13, Z: 17, TrunkHeight: 3, ConeHeight: 4},
	{X: -6, Z: 23, TrunkHeight: 2, ConeHeight: 3},
	{X: -12, Z: 27, TrunkHeight: 1, ConeHeight: 2},
	{X: -8, Z: 32, TrunkHeight: 2, ConeHeight: 3},
	{X: -10, Z: 37, TrunkHeight: 3, ConeHeight: 3},
	{X: -11, Z: 42, TrunkHeight: 2, ConeHeight: 2},

	{X: 15, Z: 5, TrunkHeight: 2, ConeHeight: 3},
	{X: 15, Z: 10, TrunkHeight: 2, ConeHeight: 3},
	{X: 15, Z: 15, TrunkHeight: 2, ConeHeight: 3},
	{X: 15, Z: 20, TrunkHeight: 2, ConeHeight: 3},
	{X: 15, Z: 25, TrunkHeight: 2, ConeHeight: 3},
	{X: 15, Z: 30, TrunkHeight: 2, ConeHeight: 3},
	{X: 15, Z: 35, TrunkHeight: 2, ConeHeight: 3},
	{X: 15, Z: 40, TrunkHeight: 2, ConeHeight: 3},
	{X: 15, Z: 45, TrunkHeight: 2, ConeHeight: 3},

	{X: 25, Z: 5, TrunkHeight: 2, ConeHeight: 3},
	{X: 25, Z: 10, TrunkHeight: 2, ConeHeight: 3},
	{X: 25, Z: 15, TrunkHeight: 2, ConeHeight: 3},
	{X: 25, Z: 20, TrunkHeight: 2, ConeHeight: 3},
	{X: 25, Z: 25, TrunkHeight: 2, ConeHeight: 3},
	{X: 25, Z: 30, TrunkHeight: 2, ConeHeight: 3},
	{X: 25, Z: 35, TrunkHeight: 2, ConeHeight: 3},
	{X: 25, Z: 40, TrunkHeight: 2, ConeHeight: 3},
	{X: 25, Z: 45, TrunkHeight: 2, ConeHeight: 3},
}
