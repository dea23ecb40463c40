// Package model defines shared data structures.
package model

// ScanConfig defines how a dictionary scan is executed.
type ScanConfig struct {
	Workers  int
	Progress bool
}

// BeeConfig defines spelling bee run settings.
type BeeConfig struct {
	Required  string
	Optional  string
	WordsFile string
	Clean     bool
	Lengths   bool
	Scan      ScanConfig
}

// WordleConfig defines wordle helper run settings.
type WordleConfig struct {
	Board     []string
	WordsFile string
	Clean     bool
	Relaxed   bool
	Explain   bool
	Scan      ScanConfig
}
