package domain

// Config represents the datasplit settings, loaded from datasplit.yaml and flags.
type Config struct {
	Proportions Proportions
	Paths       PathsConfig
	Shuffle     ShuffleConfig
	Copy        CopyConfig
	Labels      LabelsConfig
}

type PathsConfig struct {
	// Output is the root the data/ tree is created under. Empty means the
	// working directory.
	Output string
	// Pattern filters discovered images by their path relative to images/.
	Pattern string
}

type ShuffleConfig struct {
	// Seed is only honoured when HasSeed is set; the default is a fresh
	// random order on every run.
	Seed    int64
	HasSeed bool
}

type CopyConfig struct {
	Workers  int
	Manifest bool
}

type LabelsConfig struct {
	Ext string
}

const (
	DefaultLabelExt = ".txt"
	DefaultPattern  = "**/*"
)

// DefaultConfig provides the defaults used when datasplit.yaml is missing or partial.
func DefaultConfig() Config {
	return Config{
		Proportions: DefaultProportions(),
		Paths: PathsConfig{
			Output:  "",
			Pattern: DefaultPattern,
		},
		Copy: CopyConfig{
			Workers: 1,
		},
		Labels: LabelsConfig{
			Ext: DefaultLabelExt,
		},
	}
}
