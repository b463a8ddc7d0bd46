package domain

// Subset identifies which slice of the consolidated dataset a frequency
// table was computed over.
type Subset string

const (
	// SubsetAll covers every filtered case record.
	SubsetAll Subset = "all"
	// SubsetPublicEntity covers records whose passive party matches a
	// public-health-system entity pattern.
	SubsetPublicEntity Subset = "public_entity"
)

// FrequencyEntry is one category value with its occurrence count and its
// share of the table total.
type FrequencyEntry struct {
	Value   string  `json:"value"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// FrequencyTable is the count/percentage distribution of one categorical
// column over one subset of a dataset. Entries are sorted by descending
// count; equal counts are ordered by ascending value so output is
// deterministic across runs.
type FrequencyTable struct {
	// Context labels the dataset the table was computed from
	// (consolidated or a regional file).
	Context string `json:"context"`

	// Column is the analyzed column name.
	Column string `json:"column"`

	// Subset is the record slice the counts cover.
	Subset Subset `json:"subset"`

	// Entries holds every distinct non-confidential value.
	Entries []FrequencyEntry `json:"entries"`

	// Confidential counts occurrences of the SIGILOSO placeholder, which
	// courts use for sealed parties. Reported separately so it never
	// competes with real category values.
	Confidential int `json:"confidential"`

	// Total is the number of counted occurrences including confidential
	// ones. Zero for an empty subset.
	Total int `json:"total"`
}

// Empty reports whether the table has no occurrences at all.
func (t *FrequencyTable) Empty() bool {
	return t.Total == 0
}

// UniqueValues returns the number of distinct non-confidential values.
func (t *FrequencyTable) UniqueValues() int {
	return len(t.Entries)
}
