package ports

// Workspace performs the file operations the pipeline needs around compiler runs
type Workspace interface {
	EnsureDir(path string) error
	CopyFile(src, dst string) error

	// Prepend writes header followed by the target's current content back to
	// target. The replacement is atomic: target is either untouched or fully
	// rewritten.
	Prepend(target, header string) error
}
