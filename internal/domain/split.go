package domain

// Counts holds the group sizes of a split.
type Counts struct {
	Total int `json:"total"`
	Train int `json:"train"`
	Val   int `json:"val"`
	Test  int `json:"test"`
}

// ComputeCounts applies the allocation rule: train and val are floored,
// test takes whatever is left. Test can therefore exceed n*p.Test by up to 2,
// and is non-zero even when p.Test is 0.
func ComputeCounts(n int, p Proportions) Counts {
	if n <= 0 {
		return Counts{}
	}

	train := int(float64(n) * p.Train)
	val := int(float64(n) * p.Val)

	// Only reachable with an unvalidated triple.
	if train > n {
		train = n
	}
	if train+val > n {
		val = n - train
	}

	return Counts{
		Total: n,
		Train: train,
		Val:   val,
		Test:  n - train - val,
	}
}

// SplitResult is the outcome of partitioning an ordered item sequence.
type SplitResult struct {
	Train []Item
	Val   []Item
	Test  []Item
}

// Partition slices items contiguously into train, val and test according to
// ComputeCounts. It does not reorder items; shuffle before calling.
func Partition(items []Item, p Proportions) SplitResult {
	c := ComputeCounts(len(items), p)

	return SplitResult{
		Train: items[:c.Train:c.Train],
		Val:   items[c.Train : c.Train+c.Val : c.Train+c.Val],
		Test:  items[c.Train+c.Val:],
	}
}

func (r SplitResult) Counts() Counts {
	return Counts{
		Total: len(r.Train) + len(r.Val) + len(r.Test),
		Train: len(r.Train),
		Val:   len(r.Val),
		Test:  len(r.Test),
	}
}

// Group pairs a subset with its items.
type Group struct {
	Subset Subset
	Items  []Item
}

// Groups returns the three groups in copy order.
func (r SplitResult) Groups() []Group {
	return []Group{
		{Subset: SubsetTrain, Items: r.Train},
		{Subset: SubsetValidation, Items: r.Val},
		{Subset: SubsetTest, Items: r.Test},
	}
}
