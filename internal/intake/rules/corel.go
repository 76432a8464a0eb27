package rules

import strutil "llm-intake/pkg/string"

// corelCommunes is the closed list of communes of the Lausanne region
// eligible for the student track's training-location rule.
var corelCommunes = []string{
	"Lausanne",
	"Belmont-sur-Lausanne",
	"Bottens",
	"Bretigny-sur-Morrens",
	"Bussigny",
	"Chavannes-près-Renens",
	"Cheseaux-sur-Lausanne",
	"Crissier",
	"Cugy",
	"Écublens",
	"Épalinges",
	"Froideville",
	"Jorat-Menthue",
	"Jouxtens-Mézery",
	"Le Mont-sur-Lausanne",
	"Lutry",
	"Mex",
	"Montilliez",
	"Morrens",
	"Paudex",
	"Prilly",
	"Pully",
	"Renens",
	"Romanel-sur-Lausanne",
	"Saint-Sulpice",
	"Sullens",
	"Villars-Sainte-Croix",
}

// IsCorelCommune matches a commune name against the regional list,
// ignoring case and accents.
func IsCorelCommune(name string) bool {
	want := strutil.FoldAccents(name)
	if want == "" {
		return false
	}
	for _, c := range corelCommunes {
		if strutil.FoldAccents(c) == want {
			return true
		}
	}
	return false
}
