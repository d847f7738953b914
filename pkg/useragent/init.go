package useragent

import "sort"

func init() {
	// Sort patterns by OrderHint to ensure MSIE → Trident → Edge priority
	sort.SliceStable(ieVersionPatterns, func(i, j int) bool {
		return ieVersionPatterns[i].OrderHint < ieVersionPatterns[j].OrderHint
	})
}
