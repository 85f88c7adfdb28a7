// Package pager keeps a lazily populated cache of screen-sized chunks of a
// file and a two-chunk sliding window over it.
//
// The window is described by the current chunk and a scroll offset in
// [0, height-1]. At offset k the view shows rows [k, height) of the current
// chunk followed by rows [0, k) of the next one, so scrolling one row at a
// time slides the view from one chunk onto the next.
package pager

import (
	"errors"
	"fmt"
	"io"
	"math"

	"golang.org/x/text/transform"
)

var (
	// ErrLineCount wraps stream failures during the initial row count.
	ErrLineCount = errors.New("counting file lines")
	// ErrChunkRead wraps stream failures while populating a chunk.
	ErrChunkRead = errors.New("reading file chunk")
)

// Chunk holds one body-height page of rows. Filled is below len(Lines) only
// for the chunk that reached end of file.
type Chunk struct {
	Lines  []Line
	Filled int
}

// VisibleLine is a line placed on body row Row.
type VisibleLine struct {
	Line
	Row int
}

// Options configures a Pager.
type Options struct {
	// BodyHeight is the number of rows per chunk and on screen.
	BodyHeight int
	// ContentWidth is the column count available to text; rows hold at most
	// ContentWidth-1 characters.
	ContentWidth int
	// NewDecoder converts the file to UTF-8. Nil means the file already is.
	NewDecoder func() transform.Transformer
	// Eviction decides which chunks stay cached. Nil keeps all of them.
	Eviction EvictionPolicy
}

// Pager is the scroll engine. It is not safe for concurrent use.
type Pager struct {
	src        io.ReadSeeker
	reader     *RowReader
	newDecoder func() transform.Transformer
	eviction   EvictionPolicy

	height int
	width  int

	chunks      []*Chunk
	current     int
	offset      int
	totalChunks int
	totalLines  int
	// frontier is the number of chunks read sequentially so far; the shared
	// reader is positioned at the start of chunk frontier.
	frontier int
	eof      bool
}

// New counts the rows of src, allocates the chunk table and loads chunk 0.
func New(src io.ReadSeeker, opts Options) (*Pager, error) {
	if opts.BodyHeight < 1 {
		return nil, fmt.Errorf("body height must be positive, got %d", opts.BodyHeight)
	}
	if opts.ContentWidth < 2 {
		return nil, fmt.Errorf("content width must be at least 2, got %d", opts.ContentWidth)
	}

	p := &Pager{
		src:        src,
		reader:     NewRowReader(src, opts.NewDecoder),
		newDecoder: opts.NewDecoder,
		eviction:   opts.Eviction,
		height:     opts.BodyHeight,
		width:      opts.ContentWidth,
	}
	if p.eviction == nil {
		p.eviction = KeepAll()
	}
	if _, ok := src.(io.ReaderAt); !ok {
		// Reloading evicted chunks needs random access.
		p.eviction = KeepAll()
	}

	rows, err := p.reader.CountRows(p.width)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLineCount, err)
	}
	p.totalLines = rows
	p.totalChunks = (rows + p.height - 1) / p.height

	slots := p.totalChunks
	if slots < 1 {
		slots = 1
	}
	p.chunks = make([]*Chunk, slots)
	if err := p.populate(0); err != nil {
		return nil, err
	}
	return p, nil
}

// populate loads chunk index unless it is already cached.
func (p *Pager) populate(index int) error {
	if index < 0 || index >= len(p.chunks) {
		return nil
	}
	if p.chunks[index] != nil {
		return nil
	}
	if index < p.frontier {
		return p.reload(index)
	}
	for p.frontier <= index {
		chunk, err := p.readChunk(p.reader)
		if err != nil {
			return fmt.Errorf("%w: chunk %d: %w", ErrChunkRead, p.frontier, err)
		}
		p.chunks[p.frontier] = chunk
		p.frontier++
	}
	return nil
}

func (p *Pager) readChunk(r *RowReader) (*Chunk, error) {
	chunk := &Chunk{Lines: make([]Line, p.height)}
	for chunk.Filled < p.height {
		line, err := r.ReadRow(p.width)
		if errors.Is(err, io.EOF) {
			if r == p.reader {
				p.eof = true
			}
			if line.Text != "" {
				chunk.Lines[chunk.Filled] = line
				chunk.Filled++
			}
			break
		}
		if err != nil {
			return nil, err
		}
		chunk.Lines[chunk.Filled] = line
		chunk.Filled++
	}
	return chunk, nil
}

// reload rebuilds an evicted chunk by rescanning the file from the start on a
// private reader, leaving the sequential reader where it was.
func (p *Pager) reload(index int) error {
	ra, ok := p.src.(io.ReaderAt)
	if !ok {
		return fmt.Errorf("%w: chunk %d evicted from a stream without random access", ErrChunkRead, index)
	}
	r := NewRowReader(io.NewSectionReader(ra, 0, math.MaxInt64), p.newDecoder)
	skip := index * p.height
	for i := 0; i < skip; i++ {
		if _, err := r.ReadRow(p.width); err != nil {
			return fmt.Errorf("%w: chunk %d: %w", ErrChunkRead, index, err)
		}
	}
	chunk, err := p.readChunk(r)
	if err != nil {
		return fmt.Errorf("%w: chunk %d: %w", ErrChunkRead, index, err)
	}
	p.chunks[index] = chunk
	return nil
}

// VisibleLines returns the rows currently on screen, at most BodyHeight.
func (p *Pager) VisibleLines() []VisibleLine {
	out := make([]VisibleLine, 0, p.height)
	cur := p.chunks[p.current]
	if cur == nil {
		return out
	}
	for i := p.offset; i < min(cur.Filled, p.height); i++ {
		out = append(out, VisibleLine{Line: cur.Lines[i], Row: len(out)})
	}
	if p.offset == 0 || p.current+1 >= len(p.chunks) {
		return out
	}
	next := p.chunks[p.current+1]
	if next == nil {
		return out
	}
	for i := 0; i < min(next.Filled, p.offset); i++ {
		out = append(out, VisibleLine{Line: next.Lines[i], Row: len(out)})
	}
	return out
}

// ScrollDown moves the window one row towards the end of the file. It does
// nothing on the last chunk or when the next chunk has no more rows.
func (p *Pager) ScrollDown() error {
	if p.current >= p.totalChunks-1 {
		return nil
	}
	if err := p.populate(p.current + 1); err != nil {
		return err
	}

	switch {
	case p.offset == p.height-1:
		p.current++
		p.offset = 0
	case p.offset == 0:
		p.offset = 1
	default:
		if p.chunks[p.current+1].Filled > p.offset {
			p.offset++
		}
	}
	p.evict()
	return nil
}

// ScrollUp moves the window one row towards the start of the file.
func (p *Pager) ScrollUp() error {
	if p.current == 0 && p.offset == 0 {
		return nil
	}
	if p.offset == 0 {
		if err := p.populate(p.current - 1); err != nil {
			return err
		}
		p.current--
		p.offset = p.height - 1
	} else {
		p.offset--
	}
	p.evict()
	return nil
}

func (p *Pager) evict() {
	for i, chunk := range p.chunks {
		if chunk == nil || i == p.current || i == p.current+1 {
			continue
		}
		if !p.eviction.Retain(p.current, i) {
			p.chunks[i] = nil
		}
	}
}

// ProgressPercent reports how much of the file has been on screen, counting
// the full body height below the window start.
func (p *Pager) ProgressPercent() float64 {
	if p.totalLines == 0 {
		return 100
	}
	seen := min(p.current*p.height+p.offset+p.height, p.totalLines)
	return float64(seen) * 100 / float64(p.totalLines)
}

// Position returns the current chunk index and scroll offset.
func (p *Pager) Position() (chunk, offset int) {
	return p.current, p.offset
}

// Chunk returns the cached chunk at index, or nil when it is not loaded.
func (p *Pager) Chunk(index int) *Chunk {
	if index < 0 || index >= len(p.chunks) {
		return nil
	}
	return p.chunks[index]
}

func (p *Pager) TotalChunks() int { return p.totalChunks }

func (p *Pager) TotalLines() int { return p.totalLines }

func (p *Pager) BodyHeight() int { return p.height }

// AtEOF reports whether sequential reading has reached end of file.
func (p *Pager) AtEOF() bool { return p.eof }
