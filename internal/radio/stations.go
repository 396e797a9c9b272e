// Package radio holds the station catalog and the shared playback
// resource. Station streaming and read-aloud both claim the same output
// slot, so starting one always silences the other.
package radio

// Station is one entry of the built-in station list.
type Station struct {
	ID    string
	Name  string
	Genre string
	URL   string
	Color string
}

// Stations is the curated Brazilian Christian station list.
var Stations = []Station{
	{ID: "nt_1", Name: "Rádio Novo Tempo", Genre: "Adventista / Notícias", URL: "https://stream.sgr.net.br/novotempo", Color: "#1e40af"},
	{ID: "melodia_rj", Name: "Rádio Melodia 97.5", Genre: "Gospel / Adoração", URL: "https://ice.fabricahost.com.br/melodiafm", Color: "#312e81"},
	{ID: "93_fm", Name: "Rádio 93 FM", Genre: "Louvor / Jovem", URL: "https://ice.fabricahost.com.br/93fm", Color: "#7f1d1d"},
	{ID: "harpa_web", Name: "Web Rádio Harpa", Genre: "Hinos Tradicionais", URL: "https://s09.maxcast.com.br:8294/live", Color: "#78350f"},
	{ID: "feliz_sp", Name: "Rádio Feliz FM", Genre: "São Paulo / Variado", URL: "https://ice.fabricahost.com.br/felizfm", Color: "#831843"},
	{ID: "maranata_pe", Name: "Rádio Maranata FM", Genre: "Recife / Pentecostal", URL: "https://euroticast5.euroti.com.br/stream/8036/stream", Color: "#9a3412"},
	{ID: "novas_paz", Name: "Rádio Novas de Paz", Genre: "Pregação / Hinos", URL: "https://ice.fabricahost.com.br/novasdepaz88", Color: "#14532d"},
	{ID: "cpad_web", Name: "Rádio CPAD", Genre: "Teologia / Clássicos", URL: "https://s3.audio.streamer.com.br/cpad", Color: "#1e293b"},
	{ID: "biblia_sbn", Name: "Rádio Bíblia SBN", Genre: "Estudo / Leitura", URL: "https://ice.fabricahost.com.br/radiobibliasbn", Color: "#713f12"},
	{ID: "sara_pr", Name: "Rádio Sara Brasil", Genre: "Curitiba / Worship", URL: "https://ice.fabricahost.com.br/sarabrasilfmctba", Color: "#581c87"},
	{ID: "gospel_fm", Name: "Rádio Gospel FM", Genre: "Contemporâneo", URL: "https://ice.fabricahost.com.br/radiogospel", Color: "#134e4a"},
}

// StationByID returns the station with the given id, or nil.
func StationByID(id string) *Station {
	for i := range Stations {
		if Stations[i].ID == id {
			return &Stations[i]
		}
	}
	return nil
}
