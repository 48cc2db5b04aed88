package geodes

// Successors returns every state reachable from s one minute later.
//
// The first successor is always the build-nothing state. Each affordable recipe,
// checked against the stock before this minute's production, adds one more:
// production happens, the cost is paid, and the new robot starts mining next minute.
func Successors(s State, bp Blueprint) []State {
	return AppendSuccessors(make([]State, 0, NumResources+1), s, bp)
}

// AppendSuccessors is Successors appending into dst.
func AppendSuccessors(dst []State, s State, bp Blueprint) []State {
	produced := s.Produce()
	dst = append(dst, produced)
	for _, recipe := range bp.Recipes {
		if !s.CanAfford(recipe.Cost) {
			continue
		}
		dst = append(dst, produced.spend(recipe.Cost).addRobot(recipe.Robot))
	}
	return dst
}
