package coa_core

// NextCode computes the next free account code under a parent header. The
// valid range is the floor-thousand block containing the parent number, so
// children of 1-1000 stay inside 1-1000..1-1999 and never bleed into a
// sibling category's block.
//
// Allocation is advisory. Two concurrent invocations over the same snapshot
// can propose the same code; the unique index on account code is the real
// arbiter and callers retry with a fresh snapshot on conflict.
func NextCode(parentCode string, accounts []*Account) (string, error) {
	class, parentNumber, err := ParseAccountCode(parentCode)
	if err != nil {
		return "", err
	}

	blockEnd := (parentNumber/1000)*1000 + 999

	maxSibling := 0
	for _, acc := range accounts {
		accClass, number, err := ParseAccountCode(acc.Code)
		if err != nil {
			// foreign or legacy codes do not participate
			continue
		}
		if accClass != class {
			continue
		}
		if number <= parentNumber || number > blockEnd {
			continue
		}
		if number > maxSibling {
			maxSibling = number
		}
	}

	next := parentNumber + 1
	if maxSibling != 0 {
		next = maxSibling + 1
	}

	if next > blockEnd {
		return "", ErrCodeRangeExhausted
	}

	return FormatAccountCode(class, next), nil
}
