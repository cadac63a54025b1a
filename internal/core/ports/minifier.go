package ports

// Minifier compresses generated CSS.
//
//go:generate go run go.uber.org/mock/mockgen -source=minifier.go -destination=mocks/mock_minifier.go -package=mocks
type Minifier interface {
	// Compress returns a functionally equivalent, smaller stylesheet.
	Compress(css string) (string, error)
}
