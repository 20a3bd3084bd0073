package services

// Keys of the persisted key/value store.
const (
	KeyUsers       = "users"
	KeyArtists     = "artists"
	KeyArtworks    = "artworks"
	KeySessionUser = "user"
	KeyReports     = "reports"
)
