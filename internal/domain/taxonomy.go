package domain

// Stage places a post on the client journey. The set is closed; any other
// value coming in from a URL or the CMS is invalid.
type Stage string

const (
	StageDiagnostico   Stage = "diagnostico"
	StageEstruturacao  Stage = "estruturacao"
	StageImplementacao Stage = "implementacao"
	StageOtimizacao    Stage = "otimizacao"
	StageDecisao       Stage = "decisao"
)

// Stages lists every valid stage in journey order.
var Stages = []Stage{
	StageDiagnostico,
	StageEstruturacao,
	StageImplementacao,
	StageOtimizacao,
	StageDecisao,
}

func IsValidStage(s string) bool {
	for _, stage := range Stages {
		if s == string(stage) {
			return true
		}
	}
	return false
}

// StageLabels maps each stage to its display label. The enum is closed, so a
// missing key is a programming error, not a case to handle.
var StageLabels = map[Stage]string{
	StageDiagnostico:   "Diagnóstico",
	StageEstruturacao:  "Estruturação",
	StageImplementacao: "Implementação",
	StageOtimizacao:    "Otimização",
	StageDecisao:       "Decisão",
}

// Format classifies the editorial shape of a post.
type Format string

const (
	FormatArtigo      Format = "artigo"
	FormatGuia        Format = "guia"
	FormatPlaybook    Format = "playbook"
	FormatTemplate    Format = "template"
	FormatCaso        Format = "caso"
	FormatComparativo Format = "comparativo"
)

var Formats = []Format{
	FormatArtigo,
	FormatGuia,
	FormatPlaybook,
	FormatTemplate,
	FormatCaso,
	FormatComparativo,
}

func IsValidFormat(f string) bool {
	for _, format := range Formats {
		if f == string(format) {
			return true
		}
	}
	return false
}

var FormatLabels = map[Format]string{
	FormatArtigo:      "Artigo",
	FormatGuia:        "Guia",
	FormatPlaybook:    "Playbook",
	FormatTemplate:    "Template",
	FormatCaso:        "Caso de uso",
	FormatComparativo: "Comparativo",
}
