package cluster

import "sort"

// Group is one cluster of utterances. Label Noise marks the unclustered
// group.
type Group struct {
	Label      int      `json:"label"`
	Utterances []string `json:"utterances"`
}

// Groups is an aggregated clustering result in ascending label order, the
// noise group first when present.
type Groups []Group

// Aggregate groups utterances by their labels. Groups come out in ascending
// label order, and original input order is preserved within each group, so
// the result is an exact partition of the input. utterances and labels must
// have equal length.
func Aggregate(utterances []string, labels []int) Groups {
	byLabel := make(map[int][]string)
	for i, l := range labels {
		byLabel[l] = append(byLabel[l], utterances[i])
	}

	order := make([]int, 0, len(byLabel))
	for l := range byLabel {
		order = append(order, l)
	}
	sort.Ints(order)

	groups := make(Groups, 0, len(order))
	for _, l := range order {
		groups = append(groups, Group{Label: l, Utterances: byLabel[l]})
	}
	return groups
}

// ClusterCount returns the number of non-noise groups.
func (g Groups) ClusterCount() int {
	if g.hasNoise() {
		return len(g) - 1
	}
	return len(g)
}

// NoiseCount returns the number of utterances in the noise group.
func (g Groups) NoiseCount() int {
	if g.hasNoise() {
		return len(g[0].Utterances)
	}
	return 0
}

func (g Groups) hasNoise() bool {
	return len(g) > 0 && g[0].Label == Noise
}
