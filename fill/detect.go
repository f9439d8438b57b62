package fill

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/h2non/filetype"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

type srcEncoding int

const (
	encUnknown srcEncoding = iota
	encUTF8
	encUTF16BigEndian
	encUTF16LittleEndian
	encUTF32BigEndian
	encUTF32LittleEndian
)

// enough to detect BOM and any binary signature filetype knows about
const headerSize = 512

func isUTF8BOM3(buf []byte) bool {
	return len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF
}

func isUTF16BigEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF
}

func isUTF16LittleEndianBOM2(buf []byte) bool {
	return len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE
}

func isUTF32BigEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0x00 && buf[1] == 0x00 && buf[2] == 0xFE && buf[3] == 0xFF
}

func isUTF32LittleEndianBOM4(buf []byte) bool {
	return len(buf) >= 4 && buf[0] == 0xFF && buf[1] == 0xFE && buf[2] == 0x00 && buf[3] == 0x00
}

func detectUTF(buf []byte) srcEncoding {
	switch {
	case isUTF8BOM3(buf):
		return encUTF8
	// UTF-32LE BOM starts with UTF-16LE BOM, so check it first
	case isUTF32LittleEndianBOM4(buf):
		return encUTF32LittleEndian
	case isUTF32BigEndianBOM4(buf):
		return encUTF32BigEndian
	case isUTF16BigEndianBOM2(buf):
		return encUTF16BigEndian
	case isUTF16LittleEndianBOM2(buf):
		return encUTF16LittleEndian
	}
	return encUnknown
}

// selectReader wraps r to produce UTF-8. BOM wins over configured charset
// label, empty label means input is already UTF-8.
func selectReader(r io.Reader, enc srcEncoding, label string) (io.Reader, error) {
	switch enc {
	case encUnknown:
		if label == "" {
			return r, nil
		}
		cr, err := charset.NewReaderLabel(label, r)
		if err != nil {
			return nil, fmt.Errorf("unable to decode text from %q: %w", label, err)
		}
		return cr, nil
	case encUTF8:
		return transform.NewReader(r, unicode.UTF8BOM.NewDecoder()), nil
	case encUTF16BigEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()), nil
	case encUTF16LittleEndian:
		return transform.NewReader(r, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()), nil
	case encUTF32BigEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder()), nil
	case encUTF32LittleEndian:
		return transform.NewReader(r, utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder()), nil
	default:
		// this should never happen
		panic(fmt.Sprintf("unexpected source encoding %d", enc))
	}
}

// decodeText converts complete text to UTF-8.
func decodeText(data []byte, label string) ([]byte, error) {
	r, err := selectReader(bytes.NewReader(data), detectUTF(data), label)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func readHeader(r io.Reader) ([]byte, error) {
	buf := make([]byte, headerSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

func isArchiveFile(path string) (bool, error) {
	if !strings.EqualFold(filepath.Ext(path), ".zip") {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header, err := readHeader(f)
	if err != nil {
		return false, err
	}
	return filetype.Is(header, "zip"), nil
}

// matchExtension reports whether name has one of extensions, empty list
// matches everything.
func matchExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// isFilledStory reports whether name looks like a result of an earlier run.
// It can only be told when output extension is not a story extension itself.
func isFilledStory(name, outExt string, extensions []string) bool {
	if len(outExt) == 0 || len(name) <= len(outExt) || slices.ContainsFunc(extensions, func(e string) bool {
		return strings.EqualFold(e, outExt)
	}) {
		return false
	}
	return strings.EqualFold(name[len(name)-len(outExt):], outExt)
}

// checkStory decides if header belongs to text. Anything filetype recognizes
// (images, archives, documents) is binary, text with BOM is always accepted.
func checkStory(header []byte) (bool, srcEncoding) {
	if enc := detectUTF(header); enc != encUnknown {
		return true, enc
	}
	if kind, _ := filetype.Match(header); kind != filetype.Unknown {
		return false, encUnknown
	}
	return true, encUnknown
}

func isStoryFile(path string, extensions []string) (bool, srcEncoding, error) {
	if !matchExtension(path, extensions) {
		return false, encUnknown, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, encUnknown, err
	}
	defer f.Close()

	header, err := readHeader(f)
	if err != nil {
		return false, encUnknown, err
	}
	story, enc := checkStory(header)
	return story, enc, nil
}

func isStoryInArchive(f *zip.File, extensions []string) (bool, srcEncoding, error) {
	if !matchExtension(f.FileHeader.Name, extensions) {
		return false, encUnknown, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, encUnknown, err
	}
	defer r.Close()

	header, err := readHeader(r)
	if err != nil {
		return false, encUnknown, err
	}
	story, enc := checkStory(header)
	return story, enc, nil
}
