package domain

// WordPair is a single english-russian vocabulary entry
type WordPair struct {
	En string `json:"en"`
	Ru string `json:"ru"`
}

// CollectionInfo describes a stored word collection
type CollectionInfo struct {
	Name      string
	WordCount int
	SizeBytes int64
}
