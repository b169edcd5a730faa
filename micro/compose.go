// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package micro

// Compose merges b into a.
//
// ok is false when the hardware cannot drive both aggregates in the same
// cycle; that is an expected outcome, not an error.
func (tbl *Table) Compose(a, b Op) (op Op, ok bool) {
	if tbl.conflict(a, b) {
		return
	}

	op = Op{
		Names: a.Names.Union(b.Names),
		Code:  a.Code | b.Code,
		Usage: a.Usage.Add(b.Usage).Normalize(),
	}
	ok = true

	return
}

// conflict returns true if a and b cannot be merged.
func (tbl *Table) conflict(a, b Op) bool {
	sum := a.Usage.Add(b.Usage)

	switch {
	case sum.J > USAGE_J_LIMIT, sum.K > USAGE_K_LIMIT, sum.Ld > USAGE_LD_LIMIT, sum.Z > USAGE_Z_LIMIT:
		return true
	case a.Code&b.Code != 0:
		return true
	case sum.S > USAGE_S_LIMIT:
		return true
	case sum.S == USAGE_S_LIMIT && a.Pc > 1:
		return true
	case a.S == USAGE_S_LIMIT && sum.Pc > USAGE_PC_SKIP:
		return true
	case !b.SideEffects() && contend(a.Usage, b.Usage):
		return true
	}

	return tbl.excluded(a.Names, b.Names)
}

// contend returns true if b's increment, load or clear collides with a's.
func contend(a, b Usage) bool {
	return (b.Inc > 0 && a.Clr > 0) ||
		(b.Ld > 0 && a.Clr > 0) ||
		(b.Clr > 0 && a.Ld > 0) ||
		(b.Inc > 0 && a.Ld > 0) ||
		(b.Clr > 0 && a.Inc > 0) ||
		(b.Ld > 0 && a.Inc > 0)
}

// excluded returns true if a named exclusion spans the two sets.
func (tbl *Table) excluded(a, b Names) bool {
	for _, ex := range tbl.Exclusions {
		if a.Has(ex[0]) && b.Has(ex[1]) {
			return true
		}
		if a.Has(ex[1]) && b.Has(ex[0]) {
			return true
		}
	}
	return false
}
