package testutil

// EntriesJSON is a small catalog covering base entries, alternate forms and
// the loosely typed values the decoder tolerates.
const EntriesJSON = `[
	{"id": 1, "name": "Bulbasaur", "height": 0.7, "weight": "6.9", "category": "Seed",
	 "abilities": ["Overgrow"], "weakness": ["Fire", "Flying", "Ice", "Psychic"], "types": ["Grass", "Poison"]},
	{"id": 3, "name": "Venusaur", "types": ["Grass", "Poison"]},
	{"id": 3, "sub_id": 1, "name": "Venusaur", "form_name": "Mega Venusaur", "form_type": "mega",
	 "types": ["Grass", "Poison"]},
	{"id": 3, "sub_id": 2, "name": "Venusaur", "form_name": "Gigantamax Venusaur", "form_type": "gigantamax",
	 "types": ["Grass", "Poison"]},
	{"id": 4, "name": "Charmander", "height": "0.6", "weight": 8.5, "types": ["Fire"]},
	{"id": 19, "sub_id": 1, "name": "Rattata", "form_name": "Alolan Rattata", "form_type": "alola",
	 "types": ["Dark", "Normal"]},
	{"id": 25, "name": "Pikachu", "height": "", "abilities": "Static", "types": ["Electric"]},
	{"id": 152, "name": "Chikorita", "types": ["Grass"]},
	{"name": "MissingNo."}
]`

// CategoriesJSON holds the first two generations.
const CategoriesJSON = `[
	{"generation": "Generation I", "region": "Kanto", "national_dex_range": "#001 - #151",
	 "versions": "Red, Blue, Yellow", "features": ["Original 151"]},
	{"generation": "Generation II", "region": "Johto", "national_dex_range": "#152 - #251",
	 "versions": ["Gold", "Silver", "Crystal"], "features": "Held items, Breeding"}
]`
