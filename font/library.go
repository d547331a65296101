package font

import "io/fs"
import "errors"
import "strconv"
import "path/filepath"

import "golang.org/x/image/font/sfnt"

// A font identifier within a [Library]. IDs are assigned sequentially
// as fonts are registered and never change while the library is alive.
type ID uint16

// Returns the ID formatted as "font#N". Mostly useful for debugging.
func (self ID) String() string { return "font#" + strconv.Itoa(int(self)) }

// A registry of fonts addressable by [ID] and by name.
//
// Libraries can't be used concurrently. They are meant to be filled
// during the loading stage of a game and then only read from the
// render loop.
type Library struct {
	fonts []*sfnt.Font
	names []string
	byName map[string]ID
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library {
		fonts: make([]*sfnt.Font, 0, 4),
		names: make([]string, 0, 4),
		byName: make(map[string]ID, 4),
	}
}

// Returns the number of fonts registered in the library.
func (self *Library) Len() int { return len(self.fonts) }

// Returns the font with the given ID, or nil if the ID has never
// been handed out by this library.
func (self *Library) Font(id ID) *sfnt.Font {
	if int(id) >= len(self.fonts) { return nil }
	return self.fonts[id]
}

// Returns the name of the font with the given ID, or an empty string
// if the ID is not registered.
func (self *Library) Name(id ID) string {
	if int(id) >= len(self.names) { return "" }
	return self.names[id]
}

// Returns the ID of the font with the given name.
func (self *Library) Lookup(name string) (ID, bool) {
	id, found := self.byName[name]
	return id, found
}

// An error returned by [Library.Register]() and the parsing methods
// when the font name is already present in the library. The returned
// ID is still valid and refers to the previously registered font.
var ErrAlreadyPresent = errors.New("font already present in the library")

// Errors returned when the library can't hand out more IDs.
var ErrLibraryFull = errors.New("font library can't hold more fonts")

// Registers the given font and returns its ID. If the given font is nil,
// the method will panic.
//
// Fonts are identified by their full name. If a font with the same name
// is already registered, its ID is returned together with [ErrAlreadyPresent].
func (self *Library) Register(font *sfnt.Font) (ID, error) {
	if font == nil { panic("can't register nil font") }
	name, err := GetName(font)
	if err != nil { return 0, err }
	return self.register(font, name)
}

func (self *Library) register(font *sfnt.Font, name string) (ID, error) {
	if id, found := self.byName[name]; found {
		return id, ErrAlreadyPresent
	}
	if len(self.fonts) > 0xFFFF { return 0, ErrLibraryFull }
	id := ID(len(self.fonts))
	self.fonts = append(self.fonts, font)
	self.names = append(self.names, name)
	self.byName[name] = id
	return id, nil
}

// Parses and registers the font at the given path. Supported formats
// are .ttf and .otf.
func (self *Library) ParseFromPath(path string) (ID, error) {
	font, name, err := ParseFromPath(path)
	if err != nil { return 0, err }
	return self.register(font, name)
}

// The equivalent of [Library.ParseFromPath]() for raw font bytes.
// The bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte) (ID, error) {
	font, name, err := ParseFromBytes(fontBytes)
	if err != nil { return 0, err }
	return self.register(font, name)
}

// The equivalent of [Library.ParseFromPath]() for filesystems.
// This is mainly provided to support [embed.FS] and embedded fonts.
func (self *Library) ParseFromFS(filesys fs.FS, path string) (ID, error) {
	font, name, err := ParseFromFS(filesys, path)
	if err != nil { return 0, err }
	return self.register(font, name)
}

// Walks the given directory non-recursively and registers all the .ttf
// and .otf fonts in it, in lexical order. Returns the number of fonts
// added, the number skipped due to their name being already present and
// any error that interrupted the process.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	absDirPath, err := filepath.Abs(dirName)
	if err != nil { return 0, 0, err }

	err = filepath.WalkDir(absDirPath,
		func(path string, entry fs.DirEntry, err error) error {
			if err != nil { return err }
			if entry.IsDir() {
				if path == absDirPath { return nil }
				return fs.SkipDir
			}
			if !hasValidFontExtension(path) { return nil }

			_, err = self.ParseFromPath(path)
			if errors.Is(err, ErrAlreadyPresent) {
				skipped += 1
				return nil
			}
			if err == nil { added += 1 }
			return err
		})
	return added, skipped, err
}

// The equivalent of [Library.ParseAllFromPath]() for filesystems.
func (self *Library) ParseAllFromFS(filesys fs.FS, dirName string) (added, skipped int, err error) {
	entries, err := fs.ReadDir(filesys, dirName)
	if err != nil { return 0, 0, err }

	if dirName == "." {
		dirName = ""
	} else if len(dirName) == 0 || dirName[len(dirName) - 1] != '/' {
		dirName += "/"
	}

	for _, entry := range entries {
		if entry.IsDir() || !hasValidFontExtension(entry.Name()) { continue }
		_, err = self.ParseFromFS(filesys, dirName + entry.Name())
		if errors.Is(err, ErrAlreadyPresent) {
			skipped += 1
			continue
		}
		if err != nil { return added, skipped, err }
		added += 1
	}
	return added, skipped, nil
}

// Special error that can be used with [Library.Each]() to break early.
// When used, the function will return early but still return nil.
var ErrBreakEach = errors.New("Library.Each() early break")

// Calls the given function for each font in the library, in ID order.
//
// If the given function returns a non-nil error, the method will stop
// and return that error, with the only exception of [ErrBreakEach].
func (self *Library) Each(fontFunc func(ID, string, *sfnt.Font) error) error {
	for i, font := range self.fonts {
		err := fontFunc(ID(i), self.names[i], font)
		if err != nil {
			if err == ErrBreakEach { return nil }
			return err
		}
	}
	return nil
}
