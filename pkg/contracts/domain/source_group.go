package domain

// SourceGroup is the unit of batch organization: one region or court
// category's full set of source archives, discovered under a single
// subdirectory of the data root. Immutable after discovery.
type SourceGroup struct {
	// Name is the canonical group name (e.g. "NE", "TRFs") taken from the
	// recognized-group list, not the on-disk casing.
	Name string `json:"name"`

	// Archives holds the absolute paths of every ZIP found beneath the
	// group directory, in lexicographic order. May be empty.
	Archives []string `json:"archives"`
}

// FilteredDataset is the filtered, projected output for one extracted
// CSV of one source group. It carries its provenance so the exporter can
// derive a deterministic file name.
type FilteredDataset struct {
	// Group is the owning SourceGroup name.
	Group string `json:"group"`

	// Source is the stem of the CSV member the rows came from, without
	// the extension.
	Source string `json:"source"`

	// Table holds the surviving rows in original order, projected onto
	// the configured analysis columns.
	Table *Table `json:"table"`
}

// OutputName returns the deterministic regional export file name for
// this dataset.
func (d *FilteredDataset) OutputName() string {
	return "dados_saude_" + d.Group + "_" + d.Source + ".csv"
}
