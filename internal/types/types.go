package types

// FileTask pairs one source file with its mirrored destination path.
// Rel is the path relative to the source root, slash-separated; distinct
// source paths always yield distinct Rel and Dest values.
type FileTask struct {
	Source string
	Dest   string
	Rel    string
}
