package ports

// Hasher computes the content hashes cache keys are derived from.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ModelHash hashes a .scad file plus every file it transitively
	// includes or uses, so a one-byte change anywhere flips the key.
	ModelHash(path string) (string, error)

	// FileHash hashes a single file's content.
	FileHash(path string) (string, error)

	// TreeHash hashes every regular file under root in sorted order.
	// A missing root yields a fixed sentinel value rather than an error.
	TreeHash(root string) (string, error)

	// StringHash hashes an in-memory string, e.g. a tool version.
	StringHash(s string) string
}
