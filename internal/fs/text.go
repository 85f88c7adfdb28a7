package fs

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

var binaryExtensions = map[string]struct{}{
	".7z":    {},
	".a":     {},
	".apk":   {},
	".avi":   {},
	".bin":   {},
	".bmp":   {},
	".bz2":   {},
	".class": {},
	".dll":   {},
	".docx":  {},
	".dylib": {},
	".exe":   {},
	".flac":  {},
	".gif":   {},
	".gz":    {},
	".ico":   {},
	".iso":   {},
	".jar":   {},
	".jpeg":  {},
	".jpg":   {},
	".mkv":   {},
	".mov":   {},
	".mp3":   {},
	".mp4":   {},
	".o":     {},
	".ogg":   {},
	".otf":   {},
	".pdf":   {},
	".png":   {},
	".pptx":  {},
	".so":    {},
	".tar":   {},
	".tgz":   {},
	".ttf":   {},
	".wasm":  {},
	".wav":   {},
	".webp":  {},
	".woff":  {},
	".woff2": {},
	".xlsx":  {},
	".xz":    {},
	".zip":   {},
	".zst":   {},
}

// Encoding identifies how the bytes of a text file map to runes.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// NewDecoder returns a fresh transformer producing UTF-8. Byte order marks are
// consumed, invalid sequences become U+FFFD.
func (e Encoding) NewDecoder() transform.Transformer {
	switch e {
	case EncodingUTF8BOM:
		return unicode.UTF8BOM.NewDecoder()
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	default:
		return unicode.UTF8.NewDecoder()
	}
}

// DetectEncoding inspects the leading bytes of a file for a byte order mark.
func DetectEncoding(sample []byte) Encoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return EncodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUTF8
}

// IsText reports whether a file named path whose leading bytes are sample
// should be paged as text. Known binary extensions are rejected without
// looking at the content.
func IsText(path string, sample []byte) bool {
	if hasBinaryExtension(path) {
		return false
	}
	if len(sample) == 0 {
		return true
	}
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}
	if DetectEncoding(sample) != EncodingUTF8 {
		return true
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return false
	}
	if utf8.Valid(sample) {
		return true
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isTextByte(b) {
			nonPrintable++
		}
	}
	if nonPrintable == len(sample) {
		return false
	}
	return nonPrintable*100/len(sample) < nonPrintableThresholdPercent
}

func hasBinaryExtension(path string) bool {
	_, ok := binaryExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// isTextByte accepts bytes found in text files, including every byte of a
// multi-byte sequence that may have been cut at the sample boundary.
func isTextByte(b byte) bool {
	switch {
	case b == '\t' || b == '\n' || b == '\r' || b == 0x1b:
		return true
	case b >= 0x20 && b <= 0x7e:
		return true
	default:
		return b >= 0x80
	}
}

// OpenError reports a file that is missing, unreadable, not a regular file
// or not text.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// ErrIsDirectory is wrapped by OpenError when the path names a directory.
var ErrIsDirectory = errors.New("is a directory")

// ErrBinary is wrapped by OpenError when the file does not look like text.
var ErrBinary = errors.New("binary file")

// TextFile is an open file together with its detected encoding.
type TextFile struct {
	*os.File
	Name     string
	Encoding Encoding
}

// Open opens path for paging. Any failure is returned as *OpenError.
func Open(path string) (*TextFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, &OpenError{Path: path, Err: ErrIsDirectory}
	}

	sample := make([]byte, textDetectionSampleSize)
	n, err := f.ReadAt(sample, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		_ = f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	sample = sample[:n]
	if !IsText(path, sample) {
		_ = f.Close()
		return nil, &OpenError{Path: path, Err: ErrBinary}
	}

	return &TextFile{
		File:     f,
		Name:     filepath.Base(path),
		Encoding: DetectEncoding(sample),
	}, nil
}
