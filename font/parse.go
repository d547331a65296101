package font

import "os"
import "io"
import "io/fs"
import "errors"

import "golang.org/x/image/font/sfnt"

// An error returned when a font path doesn't end in .ttf or .otf.
var ErrBadExtension = errors.New("font path must end in .ttf or .otf")

// Similar to [sfnt.Parse](), but also returning the font's full name,
// which is what a [Library] uses to detect duplicates. The bytes must
// not be modified while the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	fontName, err := GetName(newFont)
	if err != nil { return nil, "", err }
	return newFont, fontName, nil
}

// Parses the font at the given path and returns it along its name.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", &fs.PathError{ Op: "parse", Path: path, Err: ErrBadExtension }
	}
	file, err := os.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", &fs.PathError{ Op: "parse", Path: path, Err: ErrBadExtension }
	}
	file, err := filesys.Open(path)
	if err != nil { return nil, "", err }
	return parseAndClose(file)
}

func parseAndClose(file io.ReadCloser) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", err
	}
	err = file.Close()
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes)
}

// Whether the path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	if len(path) < 4 { return false }
	ext := path[len(path) - 4 : ]
	return ext == ".ttf" || ext == ".otf"
}
