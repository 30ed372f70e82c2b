package address

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	// Capital is the locality that is split into sectors.
	Capital = "București"
	// CountyCode is the sector value of every locality outside the capital.
	CountyCode = "IF"
	// MaxStreetSuggestions caps SuggestStreets.
	MaxStreetSuggestions = 15
)

var (
	sectors     = []string{"1", "2", "3", "4", "5", "6"}
	streetTypes = []string{"Str.", "Bd.", "Cal.", "Intr.", "Sos."}

	localities = sortLocalities([]string{
		Capital,
		"1 Decembrie", "Afumați", "Balotești", "Berceni", "Bragadiru", "Brănești", "Buftea",
		"Cernica", "Chiajna", "Chitila", "Ciolpani", "Ciorogârla", "Clinceni", "Copăceni",
		"Corbeanca", "Cornetu", "Dascălu", "Dărăști-Ilfov", "Domnești", "Dragomirești-Vale",
		"Găneasa", "Glina", "Grădiștea", "Gruiu", "Jilava", "Moara Vlăsiei", "Mogoșoaia",
		"Măgurele", "Nuci", "Otopeni", "Pantelimon", "Periș", "Petrești", "Popești-Leordeni",
		"Postăvari", "Snagov", "Ștefăneștii de Jos", "Ștefăneștii de Sus", "Tunari", "Vidra", "Voluntari",
	})

	capitalStreets = sortRomanian([]string{
		"Victoriei", "Magheru", "Unirii", "Decebal", "Burebista", "Mihai Bravu", "Iancu de Hunedoara",
		"Ștefan cel Mare", "Pantelimon", "Colentina", "Moșilor", "Carol I", "Elisabeta", "Rahovei",
		"Floreasca", "Dorobanților", "Griviței", "Plevnei", "Văcărești", "Splaiul Unirii", "Splaiul Independenței",
		"Timișoara", "Iuliu Maniu", "Uverturii", "Ghencea", "Drumul Taberei", "Vasile Milea", "Poligrafiei",
		"Bucureștii Noi", "Ion Mihalache", "Pavel Kiseleff", "Aviatorilor", "Constantin Prezan", "Primăverii",
		"Mircea Eliade", "Radu Beller", "Barbu Văcărescu", "Lacul Tei", "Doamna Ghica", "Petricani", "Fundeni",
		"Andronache", "Giurgiului", "Olteniței", "Berceni", "Viilor", "Alexandriei", "Mărgeanului", "Antiaeriană",
		"Drumul Sării", "13 Septembrie", "Libertății", "Națiunile Unite", "Corneliu Coposu", "Octavian Goga",
		"Mircea Vodă", "Nerva Traian", "Ion Dragalina", "Vasile Lascăr", "Viitorului", "Tunari", "Erou Iancu Nicolae",
		"Pipera", "Zambaccian", "Mendeleev", "Amzei", "Câmpineanu", "Brezoianu", "Lipscani", "Gabroveni",
		"Franceză", "Smârdan", "Șelari", "Covaci", "Baicului", "Ziduri Moși", "Heliade între Vii", "Electronică",
		"Fabrica de Glucoză", "Dimitrie Pompeiu", "George Constantinescu", "Vatra Luminoasă", "Maior Coravu",
		"Baba Novac", "Constantin Brâncuși", "Nicolae Grigorescu", "Theodor Pallady", "Camil Ressu", "Rebreanu",
		"Postăvarului", "1 Decembrie 1918", "Lucrețiu Pătrășcanu", "Codrii Neamțului", "Prevederii", "Alexandru Obregia",
	})
)

// Localities returns the served localities, the capital first and the rest alphabetically.
func Localities() []string {
	return slices.Clone(localities)
}

// IsLocality reports whether name is a served locality.
func IsLocality(name string) bool {
	return slices.Contains(localities, name)
}

// Sectors returns the sector choices of the capital.
func Sectors() []string {
	return slices.Clone(sectors)
}

// StreetTypes returns the street type prefixes, the first being the default.
func StreetTypes() []string {
	return slices.Clone(streetTypes)
}

// SuggestStreets returns up to MaxStreetSuggestions capital street names that
// start with query, ignoring case. A blank query suggests nothing.
func SuggestStreets(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}
	out := make([]string, 0, MaxStreetSuggestions)
	for _, street := range capitalStreets {
		if strings.HasPrefix(strings.ToLower(street), query) {
			out = append(out, street)
			if len(out) == MaxStreetSuggestions {
				break
			}
		}
	}
	return out
}

func sortRomanian(list []string) []string {
	c := collate.New(language.Romanian)
	c.SortStrings(list)
	return list
}

func sortLocalities(list []string) []string {
	sortRomanian(list)
	i := slices.Index(list, Capital)
	return append([]string{Capital}, slices.Delete(list, i, i+1)...)
}
