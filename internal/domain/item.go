package domain

// Item is one image in the dataset plus its optional annotation.
type Item struct {
	// Stem is the image filename without its extension. It is not unique:
	// nested directories may hold images with the same stem.
	Stem string

	// ImagePath is the source path of the image. Always set.
	ImagePath string

	// LabelPath is the source path of the paired annotation, or empty when the
	// image has none.
	LabelPath string
}

func (it Item) HasLabel() bool {
	return it.LabelPath != ""
}

// Subset names one of the three output groups. The value is the directory name.
type Subset string

const (
	SubsetTrain      Subset = "train"
	SubsetValidation Subset = "validation"
	SubsetTest       Subset = "test"
)

// Subsets lists the groups in copy order.
func Subsets() []Subset {
	return []Subset{SubsetTrain, SubsetValidation, SubsetTest}
}
