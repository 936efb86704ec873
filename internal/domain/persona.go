package domain

// PersonaID identifies one of the fixed buyer personas. Personas are not
// CMS-backed; the table below is the source of truth.
type PersonaID string

const (
	PersonaDiretorComercial  PersonaID = "diretor-comercial"
	PersonaGestorDeMarketing PersonaID = "gestor-de-marketing"
	PersonaLiderDeOperacoes  PersonaID = "lider-de-operacoes"
	PersonaFundador          PersonaID = "fundador"
)

// Persona carries the four display strings for a buyer persona. The rest of
// the system treats them as opaque copy.
type Persona struct {
	ID      PersonaID
	Label   string
	Pain    string
	Desire  string
	Promise string
}

var personas = []Persona{
	{
		ID:      PersonaDiretorComercial,
		Label:   "Diretor Comercial",
		Pain:    "O funil vive em planilhas e cada vendedor segue um processo diferente.",
		Desire:  "Previsibilidade de pipeline e cobrança por etapa, não por intuição.",
		Promise: "Um funil único no Bitrix24, com etapas e metas que o time realmente segue.",
	},
	{
		ID:      PersonaGestorDeMarketing,
		Label:   "Gestor de Marketing",
		Pain:    "Leads chegam por vários canais e se perdem antes de virar oportunidade.",
		Desire:  "Rastrear a origem de cada lead até a receita que ele gerou.",
		Promise: "Captação centralizada e atribuição de ponta a ponta dentro do CRM.",
	},
	{
		ID:      PersonaLiderDeOperacoes,
		Label:   "Líder de Operações",
		Pain:    "Processos de entrega dependem de pessoas específicas e travam nas trocas de mão.",
		Desire:  "Fluxos documentados que rodam sozinhos, com visibilidade de gargalos.",
		Promise: "Automação de processos no Bitrix24 com responsáveis e prazos explícitos.",
	},
	{
		ID:      PersonaFundador,
		Label:   "Fundador",
		Pain:    "A empresa cresceu e a operação inteira ainda mora na sua cabeça.",
		Desire:  "Sair do operacional sem perder o controle do que acontece.",
		Promise: "Uma plataforma única onde vendas, projetos e atendimento ficam visíveis.",
	},
}

// Personas returns the full persona table in display order.
func Personas() []Persona {
	out := make([]Persona, len(personas))
	copy(out, personas)
	return out
}

// PersonaByID looks a persona up by id. Pure membership check, no partial
// matching.
func PersonaByID(id string) (Persona, bool) {
	for _, p := range personas {
		if string(p.ID) == id {
			return p, true
		}
	}
	return Persona{}, false
}

func IsValidPersona(id string) bool {
	_, ok := PersonaByID(id)
	return ok
}
