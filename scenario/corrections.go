package scenario

// correctionKey identifies one hand-tuned positional override in the heading
// sweep: rectangle A's heading in degrees, rectangle B's relative heading
// offset in degrees, and the preset index.
type correctionKey struct {
	headingA int
	offset   int
	preset   int
}

// displacement shifts rectangle B's position for one keyed scenario.
type displacement struct {
	dx float64
	dy float64
}

// corrections moves otherwise-disjoint preset configurations into contact so
// near-boundary behavior gets exercised at each heading combination. Tuned by
// hand against the rendered corpus; fixture data, kept verbatim.
var corrections = map[correctionKey]displacement{
	{-180, 30, 10}: {dx: -1},

	{-135, 0, 8}:   {dx: -2.5},
	{-135, 0, 9}:   {dx: -2.5},
	{-135, 0, 10}:  {dx: -2.5},
	{-135, 10, 8}:  {dx: -2.7},
	{-135, 10, 9}:  {dx: -2.7},
	{-135, 10, 10}: {dx: -2.7},
	{-135, 20, 8}:  {dx: -2.7},
	{-135, 20, 9}:  {dx: -2.7},
	{-135, 20, 10}: {dx: -2.7},
	{-135, 30, 8}:  {dx: -2.7},
	{-135, 30, 9}:  {dx: -2.7},
	{-135, 30, 10}: {dx: -2.7},

	{-90, 0, 0}:   {dy: -0.5},
	{-90, 0, 1}:   {dy: -0.5},
	{-90, 0, 2}:   {dy: -0.5},
	{-90, 0, 3}:   {dy: -0.5},
	{-90, 0, 4}:   {dy: -0.5},
	{-90, 0, 5}:   {dy: -0.5},
	{-90, 0, 8}:   {dx: -2.7},
	{-90, 0, 9}:   {dx: -2.7},
	{-90, 0, 10}:  {dx: -3.5},
	{-90, 10, 8}:  {dx: -3.0},
	{-90, 10, 9}:  {dx: -3.0},
	{-90, 10, 10}: {dx: -3.0},
	{-90, 20, 8}:  {dx: -3.0},
	{-90, 20, 9}:  {dx: -3.0},
	{-90, 20, 10}: {dx: -3.0},
	{-90, 30, 8}:  {dx: -3.0},
	{-90, 30, 9}:  {dx: -3.0},
	{-90, 30, 10}: {dx: -3.0},

	{-45, 0, 8}:   {dx: -2.7},
	{-45, 0, 9}:   {dx: -2.7},
	{-45, 0, 10}:  {dx: -2.7},
	{-45, 10, 8}:  {dx: -2.7},
	{-45, 10, 9}:  {dx: -2.7},
	{-45, 10, 10}: {dx: -2.7},
	{-45, 20, 7}:  {dx: -2.7},
	{-45, 20, 8}:  {dx: -2.7},
	{-45, 20, 9}:  {dx: -2.7},
	{-45, 20, 10}: {dx: -2.7},
	{-45, 30, 7}:  {dx: -1},
	{-45, 30, 8}:  {dx: -2.7},
	{-45, 30, 9}:  {dx: -2.7},
	{-45, 30, 10}: {dx: -2.7},

	{45, 0, 9}:   {dx: -1.5},
	{45, 0, 10}:  {dx: -1.5},
	{45, 10, 9}:  {dx: -2.7},
	{45, 10, 10}: {dx: -2.7},
	{45, 20, 9}:  {dx: -2.7},
	{45, 20, 10}: {dx: -2.7},
	{45, 30, 9}:  {dx: -2.7},
	{45, 30, 10}: {dx: -2.7},

	{90, 0, 0}:   {dy: -0.5},
	{90, 0, 1}:   {dy: -0.5},
	{90, 0, 2}:   {dy: -0.5},
	{90, 0, 3}:   {dy: -0.5},
	{90, 0, 4}:   {dy: -0.5},
	{90, 0, 5}:   {dy: -0.5},
	{90, 0, 8}:   {dx: -0.7},
	{90, 0, 9}:   {dx: -2.7},
	{90, 0, 10}:  {dx: -2.7},
	{90, 10, 9}:  {dx: -2.7},
	{90, 10, 10}: {dx: -2.7},
	{90, 20, 9}:  {dx: -2.7},
	{90, 20, 10}: {dx: -2.7},
	{90, 30, 9}:  {dx: -2.7},
	{90, 30, 10}: {dx: -2.7},

	{135, 0, 9}:  {dx: -2.0},
	{135, 0, 10}: {dx: -2.0},
}

// correction returns the positional override for a sweep scenario, or (0, 0)
// when none is registered.
func correction(headingA, offset, preset int) (float64, float64) {
	d := corrections[correctionKey{headingA: headingA, offset: offset, preset: preset}]
	return d.dx, d.dy
}
