package optset

import "os"

// File is the value of a file option: the path as given on the command
// line plus the file's contents, read eagerly at match time.
type File struct {
	Path     string
	Contents []byte
}

// String returns the file contents as a string.
func (f File) String() string {
	return string(f.Contents)
}

func readFile(path string) (File, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return File{}, err
	}
	return File{Path: path, Contents: contents}, nil
}
