package knowledge

const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
	DefaultTopK         = 5

	LogPrefixIndex  = "knowledge.usecase.Bootstrap"
	LogPrefixSearch = "knowledge.usecase.Search"
)
