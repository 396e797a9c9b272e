package catalog

// ScriptureCatalog contains the 66 canonical books with Portuguese names and
// chapter counts.
var ScriptureCatalog = Catalog{
	ID:    Scripture,
	Title: "Bíblia Sagrada",
	Entries: []Entry{
		// Old Testament
		{"Gênesis", TestamentOld, 50},
		{"Êxodo", TestamentOld, 40},
		{"Levítico", TestamentOld, 27},
		{"Números", TestamentOld, 36},
		{"Deuteronômio", TestamentOld, 34},
		{"Josué", TestamentOld, 24},
		{"Juízes", TestamentOld, 21},
		{"Rute", TestamentOld, 4},
		{"1 Samuel", TestamentOld, 31},
		{"2 Samuel", TestamentOld, 24},
		{"1 Reis", TestamentOld, 22},
		{"2 Reis", TestamentOld, 25},
		{"1 Crônicas", TestamentOld, 29},
		{"2 Crônicas", TestamentOld, 36},
		{"Esdras", TestamentOld, 10},
		{"Neemias", TestamentOld, 13},
		{"Ester", TestamentOld, 10},
		{"Jó", TestamentOld, 42},
		{"Salmos", TestamentOld, 150},
		{"Provérbios", TestamentOld, 31},
		{"Eclesiastes", TestamentOld, 12},
		{"Cânticos", TestamentOld, 8},
		{"Isaías", TestamentOld, 66},
		{"Jeremias", TestamentOld, 52},
		{"Lamentações", TestamentOld, 5},
		{"Ezequiel", TestamentOld, 48},
		{"Daniel", TestamentOld, 12},
		{"Oseias", TestamentOld, 14},
		{"Joel", TestamentOld, 3},
		{"Amós", TestamentOld, 9},
		{"Obadias", TestamentOld, 1},
		{"Jonas", TestamentOld, 4},
		{"Miqueias", TestamentOld, 7},
		{"Naum", TestamentOld, 3},
		{"Habacuque", TestamentOld, 3},
		{"Sofonias", TestamentOld, 3},
		{"Ageu", TestamentOld, 2},
		{"Zacarias", TestamentOld, 14},
		{"Malaquias", TestamentOld, 4},
		// New Testament
		{"Mateus", TestamentNew, 28},
		{"Marcos", TestamentNew, 16},
		{"Lucas", TestamentNew, 24},
		{"João", TestamentNew, 21},
		{"Atos", TestamentNew, 28},
		{"Romanos", TestamentNew, 16},
		{"1 Coríntios", TestamentNew, 16},
		{"2 Coríntios", TestamentNew, 13},
		{"Gálatas", TestamentNew, 6},
		{"Efésios", TestamentNew, 6},
		{"Filipenses", TestamentNew, 4},
		{"Colossenses", TestamentNew, 4},
		{"1 Tessalonicenses", TestamentNew, 5},
		{"2 Tessalonicenses", TestamentNew, 3},
		{"1 Timóteo", TestamentNew, 6},
		{"2 Timóteo", TestamentNew, 4},
		{"Tito", TestamentNew, 3},
		{"Filemom", TestamentNew, 1},
		{"Hebreus", TestamentNew, 13},
		{"Tiago", TestamentNew, 5},
		{"1 Pedro", TestamentNew, 5},
		{"2 Pedro", TestamentNew, 3},
		{"1 João", TestamentNew, 5},
		{"2 João", TestamentNew, 1},
		{"3 João", TestamentNew, 1},
		{"Judas", TestamentNew, 1},
		{"Apocalipse", TestamentNew, 22},
	},
}

// ApocryphaCatalog contains the deuterocanonical and pseudepigraphal books
// offered by the apocrypha reader.
var ApocryphaCatalog = Catalog{
	ID:    Apocrypha,
	Title: "Apócrifos",
	Entries: []Entry{
		{"1 Enoque", TestamentOld, 108},
		{"Tobias", TestamentOld, 14},
		{"Judite", TestamentOld, 16},
		{"Sabedoria de Salomão", TestamentOld, 19},
		{"Eclesiástico (Sirácida)", TestamentOld, 51},
		{"Baruque", TestamentOld, 6},
		{"1 Macabeus", TestamentOld, 16},
		{"2 Macabeus", TestamentOld, 15},
		{"Oração de Manassés", TestamentOld, 1},
	},
}

// Author libraries. Chapter counts follow the printed Portuguese editions;
// works without numbered chapters use major-section counts.

var WhiteLibrary = Catalog{
	ID:    White,
	Title: "Ellen G. White",
	Entries: []Entry{
		{"O Grande Conflito", TestamentNone, 42},
		{"O Desejado de Todas as Nações", TestamentNone, 87},
		{"Caminho a Cristo", TestamentNone, 13},
		{"Patriarcas e Profetas", TestamentNone, 73},
		{"Profetas e Reis", TestamentNone, 60},
		{"Atos dos Apóstolos", TestamentNone, 58},
		{"Parábolas de Jesus", TestamentNone, 29},
		{"O Maior Discurso de Cristo", TestamentNone, 5},
	},
}

var SilvaLibrary = Catalog{
	ID:    Silva,
	Title: "Dr. Rodrigo Silva",
	Entries: []Entry{
		{"Escavando a Verdade", TestamentNone, 12},
		{"A Arqueologia da Bíblia", TestamentNone, 15},
		{"Enigmas do Antigo Testamento", TestamentNone, 10},
		{"O Jesus Histórico", TestamentNone, 14},
	},
}

var BorgesLibrary = Catalog{
	ID:    Borges,
	Title: "Michelson Borges",
	Entries: []Entry{
		{"A História da Vida", TestamentNone, 11},
		{"Por Que Creio", TestamentNone, 16},
		{"Criação e Evolução", TestamentNone, 12},
		{"Nos Bastidores da Mídia", TestamentNone, 9},
	},
}

var BunyanLibrary = Catalog{
	ID:    Bunyan,
	Title: "John Bunyan",
	Entries: []Entry{
		{"O Peregrino", TestamentNone, 10},
		{"A Peregrina", TestamentNone, 8},
		{"Graça Abundante", TestamentNone, 9},
		{"A Guerra Santa", TestamentNone, 17},
	},
}

var FergusonLibrary = Catalog{
	ID:    Ferguson,
	Title: "Sinclair Ferguson",
	Entries: []Entry{
		{"O Espírito Santo", TestamentNone, 11},
		{"A Vida Cristã", TestamentNone, 18},
		{"Em Cristo Somente", TestamentNone, 50},
		{"O Coração da Fé", TestamentNone, 12},
	},
}

var FinneyLibrary = Catalog{
	ID:    Finney,
	Title: "Charles Finney",
	Entries: []Entry{
		{"Palestras Sobre Avivamento", TestamentNone, 22},
		{"Teologia Sistemática", TestamentNone, 36},
		{"O Verdadeiro Arrependimento", TestamentNone, 8},
		{"Autobiografia", TestamentNone, 36},
	},
}
