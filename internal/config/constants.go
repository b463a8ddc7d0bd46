package config

// Recognized source-group directory names under the data root. Matching
// is case-insensitive; anything else at the top level is ignored.
var SourceGroups = []string{"NE", "NO", "SE", "SU", "CO", "TRFs"}

// Column names as they appear in the CNJ export headers.
const (
	ColumnCourt         = "Tribunal"
	ColumnProcess       = "Processo"
	ColumnYear          = "Ano"
	ColumnSubjectCodes  = "Codigos assuntos"
	ColumnActiveParty   = "Polo ativo"
	ColumnActiveNature  = "Polo ativo - Natureza juridica"
	ColumnPassiveParty  = "Polo passivo"
	ColumnPassiveNature = "Polo passivo - Natureza juridica"
)

// ProjectedColumns is the fixed ordered column subset every filtered row
// is reduced to. Columns absent from a source schema are filled with the
// neutral marker.
var ProjectedColumns = []string{
	ColumnCourt,
	ColumnProcess,
	ColumnYear,
	ColumnSubjectCodes,
	ColumnActiveParty,
	ColumnActiveNature,
	ColumnPassiveParty,
	ColumnPassiveNature,
}

// AnalysisColumns are the categorical columns the frequency analyzer
// runs over, in presentation order.
var AnalysisColumns = []string{
	ColumnSubjectCodes,
	ColumnActiveParty,
	ColumnActiveNature,
	ColumnPassiveParty,
	ColumnPassiveNature,
}

// HealthSubjectCodes is the CNJ public-health subject-code allow-list
// (supplementary-health codes excluded). A case row survives filtering
// iff at least one code in its subject cell belongs to this set.
var HealthSubjectCodes = map[int]bool{
	12480: true, 12481: true, 12482: true, 12483: true, 12484: true,
	12485: true, 12486: true, 12487: true, 12488: true, 12489: true,
	12490: true, 12491: true, 12492: true, 12493: true, 12494: true,
	12495: true, 12496: true, 12497: true, 12498: true, 12499: true,
	12500: true, 12501: true, 12502: true, 12503: true, 12504: true,
	12505: true, 12506: true, 12507: true, 12508: true, 12509: true,
	12510: true, 12511: true, 12512: true, 12513: true, 12514: true,
	12515: true, 12516: true, 12517: true, 12518: true, 12519: true,
	12520: true, 12521: true, 14759: true, 14760: true,
}

// PublicEntityKeywords mark a passive-party legal nature as a public
// health-system entity. Matched as substrings, case-insensitive, after
// multi-value cells are split.
var PublicEntityKeywords = []string{
	"ORGAO PUBLICO",
	"ESTADO OU DISTRITO FEDERAL",
	"MUNICIPIO",
	"AUTARQUIA",
	"FUNDACAO PUBLICA",
	"UNIAO",
	"SECRETARIA",
	"PROCURADORIA",
	"FAZENDA",
	"FEDERAL",
	"ESTADUAL",
	"MUNICIPAL",
	"INSTITUTO NACIONAL DO SEGURO SOCIAL",
	"ADVOCACIA GERAL DA UNIAO",
}

// ConfidentialValue is the placeholder courts substitute for sealed
// party names. Counted separately by the analyzer.
const ConfidentialValue = "SIGILOSO"

// ConsolidatedFileName is the fixed name of the national extract.
const ConsolidatedFileName = "DADOS_CNJ_FILTRADOS_SAUDE_CONSOLIDADO.csv"

// ReportBaseName is the stem shared by the combined report outputs
// (<stem>.csv and <stem>.xlsx).
const ReportBaseName = "analise_saude_cnj"

// DefaultTopN is how many leading category values a formatted report
// table shows before collapsing the rest into an "Outros" row.
const DefaultTopN = 10
