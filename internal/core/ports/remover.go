package ports

// Remover deletes directory trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=remover.go -destination=mocks/mock_remover.go -package=mocks
type Remover interface {
	// RemoveAll deletes path and everything below it.
	// A path that does not exist is not an error. Paths that are keep, or
	// contain keep, are refused.
	RemoveAll(path, keep string) error
}
