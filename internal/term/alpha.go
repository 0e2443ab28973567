package term

// AlphaEqual reports whether x (in arena ax) and y (in arena ay)
// denote the same term up to the cosmetic parameter names carried by
// their Lambda cells. Two terms across different arenas can only be
// compared this way, since Handle equality is reference equality
// within a single arena (spec §3 invariant 5) and says nothing about
// terms built in separate arenas.
func AlphaEqual(ax *Arena, x Handle, ay *Arena, y Handle) bool {
	nx := ax.Unpack(x)
	ny := ay.Unpack(y)
	if nx.Kind != ny.Kind {
		return false
	}
	switch nx.Kind {
	case KindVariable:
		return nx.Index == ny.Index
	case KindLambda:
		return AlphaEqual(ax, nx.Left, ay, ny.Left)
	default:
		return AlphaEqual(ax, nx.Left, ay, ny.Left) && AlphaEqual(ax, nx.Right, ay, ny.Right)
	}
}
