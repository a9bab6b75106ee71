package codename

import "strconv"

// Resolve assigns a unique codename to every member of one collision
// group. The epithets slice holds the full species epithet of each
// member in original table order; base is the key they collide on.
//
// Every member starts with the shared base. Starting at offset 3 (the
// letters already consumed into the base key) members that still share
// a codename grow by one letter of their species epithet per round.
// A member whose epithet runs out stops growing but stays a collision
// candidate. The loop stops when a round finds no collisions or the
// longest epithet is exhausted.
//
// A final numeric-suffix pass guarantees uniqueness even for true
// duplicates: the first occurrence of a value keeps it, later
// occurrences get 2, 3, ... appended. The pass runs unconditionally,
// because letter extension is not exhaustive for all inputs.
//
// Resolve never fails and always returns exactly one codename per
// member, all distinct, in the order the epithets were given.
func Resolve(base string, epithets []string) []string {
	if len(epithets) == 1 {
		return []string{base}
	}

	codes := make([]string, len(epithets))
	for i := range codes {
		codes[i] = base
	}

	runeEpithets := make([][]rune, len(epithets))
	var maxLen int
	for i, ep := range epithets {
		runeEpithets[i] = []rune(ep)
		if len(runeEpithets[i]) > maxLen {
			maxLen = len(runeEpithets[i])
		}
	}

	for idx := 3; idx < maxLen; idx++ {
		buckets := make(map[string][]int)
		for i, code := range codes {
			buckets[code] = append(buckets[code], i)
		}

		var anyCollision bool
		for _, members := range buckets {
			if len(members) < 2 {
				continue
			}
			anyCollision = true
			for _, i := range members {
				if idx < len(runeEpithets[i]) {
					codes[i] += string(runeEpithets[i][idx])
				}
			}
		}

		if !anyCollision {
			break
		}
	}

	seen := make(map[string]int, len(codes))
	for i, code := range codes {
		if n, ok := seen[code]; ok {
			seen[code] = n + 1
			codes[i] = code + strconv.Itoa(n+1)
		} else {
			seen[code] = 1
		}
	}

	return codes
}
