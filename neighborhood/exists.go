package neighborhood

// Existence masks are emitted by the same recursion shape as the offset
// enumeration in offsets.go, so flag l always describes offset slot l.

// appendDirectExists appends one flag per direct slot: the −1 step in
// dimension level exists iff the low-border bit of that dimension is clear,
// the +1 step iff the high-border bit is clear.
func appendDirectExists(e []bool, code BorderCode, level int) []bool {
	e = append(e, code&(1<<(2*uint(level))) == 0)
	if level > 0 {
		e = appendDirectExists(e, code, level-1)
	}
	return append(e, code&(2<<(2*uint(level))) == 0)
}

// appendIndirectExists appends one flag per indirect slot. A set border bit
// in dimension level gates the entire sub-block of slots stepping along that
// direction: one blocked axis invalidates every diagonal that uses it,
// whatever the offsets in the remaining dimensions.
func appendIndirectExists(e []bool, code BorderCode, level int, center bool) []bool {
	if level == 0 {
		e = append(e, code&1 == 0)
		if !center {
			e = append(e, true)
		}
		return append(e, code&2 == 0)
	}
	if code&(1<<(2*uint(level))) == 0 {
		e = appendIndirectExists(e, code, level-1, false)
	} else {
		e = markOutside(e, level-1)
	}
	e = appendIndirectExists(e, code, level-1, center)
	if code&(2<<(2*uint(level))) == 0 {
		e = appendIndirectExists(e, code, level-1, false)
	} else {
		e = markOutside(e, level-1)
	}
	return e
}

// markOutside appends false for every slot of a non-center sub-block
// spanning levels level..0, i.e. 3^(level+1) slots.
func markOutside(e []bool, level int) []bool {
	if level == 0 {
		return append(e, false, false, false)
	}
	e = markOutside(e, level-1)
	e = markOutside(e, level-1)
	return markOutside(e, level-1)
}
