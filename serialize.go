package dlist

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// FileFormat selects the persistence layout for SaveToFile / LoadFromFile.
type FileFormat int

const (
	// FormatBinary writes a fixed header followed by raw element bytes.
	FormatBinary FileFormat = iota
	// FormatText writes one human-readable token per element.
	FormatText
)

// Element sizes recognized by the text renderers. Anything else is treated
// as an opaque byte blob.
const (
	sizeOfInt    = 4
	sizeOfDouble = 8
	sizeOfChar   = 1
)

// ToArray flattens the list into one contiguous buffer of
// Len()*ElementSize() bytes, nil for an empty list.
func (l *List) ToArray() []byte {
	if l == nil || l.length == 0 {
		return nil
	}
	out := make([]byte, l.length*l.elementSize)
	i := 0
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		copy(out[i*l.elementSize:(i+1)*l.elementSize], cur.data)
		i++
	}
	return out
}

// FromArray clears the list and refills it with copies of the first n
// elements of the contiguous buffer arr.
func (l *List) FromArray(arr []byte, n int) error {
	if l == nil || arr == nil {
		return ErrNilArgument
	}
	if n < 0 || len(arr) < n*l.elementSize {
		return fmt.Errorf("array holds fewer than %d elements of %d bytes: %w", n, l.elementSize, ErrInvalidOperation)
	}
	if err := l.Clear(); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := l.InsertTail(arr[i*l.elementSize : (i+1)*l.elementSize]); err != nil {
			return err
		}
	}
	return nil
}

// ToString renders the list for debugging. Recognized primitive sizes become
// tokens joined by separator; any other element size renders as the
// placeholder "[data]". Lossy by design; use SaveToFile for persistence.
func (l *List) ToString(separator string) (string, error) {
	if l == nil {
		return "", ErrNilArgument
	}
	var b strings.Builder
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if b.Len() > 0 {
			b.WriteString(separator)
		}
		switch l.elementSize {
		case sizeOfInt:
			b.WriteString(strconv.Itoa(decodeInt(cur.data)))
		case sizeOfDouble:
			b.WriteString(strconv.FormatFloat(decodeDouble(cur.data), 'f', 2, 64))
		case sizeOfChar:
			b.WriteByte(cur.data[0])
		default:
			b.WriteString("[data]")
		}
	}
	return b.String(), nil
}

// Print writes each element on its own line with its index, using the
// configured print callback.
func (l *List) Print(w io.Writer) error {
	return l.PrintAdvanced(w, false, true, "\n")
}

// PrintAdvanced renders the list through the print callback with optional
// length line and per-element indices. Printing an empty list reports
// ErrNotFound.
func (l *List) PrintAdvanced(w io.Writer, showSize, showIndex bool, separator string) error {
	if l == nil || w == nil {
		return ErrNilArgument
	}
	if l.Empty() {
		return ErrNotFound
	}
	if l.print == nil {
		return ErrNoPrintFunc
	}
	bw := bufio.NewWriter(w)
	if showSize {
		fmt.Fprintf(bw, "List len: %d\n", l.length)
	}
	index := 0
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if showIndex {
			fmt.Fprintf(bw, "  [%d]: ", index)
			index++
		}
		bw.WriteString(l.print(cur.data))
		if cur.next != l.tail {
			bw.WriteString(separator)
		}
	}
	bw.WriteByte('\n')
	return bw.Flush()
}

// SaveToFile persists the list. Binary layout is
//
//	[count uint64][element size uint64][count x element size bytes]
//
// with a little-endian header and no further normalization, so files are
// only portable between builds using the same element layout. Text mode
// writes one token per element joined by separator (default "\n");
// non-primitive element sizes fall back to a space-separated hex byte dump
// per element and the file always ends with a newline.
func (l *List) SaveToFile(filename string, format FileFormat, separator string) error {
	if l == nil || filename == "" {
		return ErrNilArgument
	}
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("create %s: %w", filename, err)
	}
	w := bufio.NewWriter(f)
	if format == FormatBinary {
		err = l.writeBinary(w)
	} else {
		err = l.writeText(w, separator)
	}
	if err == nil {
		err = w.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (l *List) writeBinary(w *bufio.Writer) error {
	header := make([]byte, 16)
	binary.LittleEndian.PutUint64(header[0:8], uint64(l.length))
	binary.LittleEndian.PutUint64(header[8:16], uint64(l.elementSize))
	if _, err := w.Write(header); err != nil {
		return err
	}
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		if _, err := w.Write(cur.data[:l.elementSize]); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) writeText(w *bufio.Writer, separator string) error {
	if separator == "" {
		separator = "\n"
	}
	for cur := l.head.next; cur != l.tail; cur = cur.next {
		switch l.elementSize {
		case sizeOfInt:
			w.WriteString(strconv.Itoa(decodeInt(cur.data)))
		case sizeOfDouble:
			w.WriteString(strconv.FormatFloat(decodeDouble(cur.data), 'g', 15, 64))
		case sizeOfChar:
			w.WriteByte(cur.data[0])
		default:
			for i := 0; i < l.elementSize; i++ {
				if i > 0 {
					w.WriteByte(' ')
				}
				fmt.Fprintf(w, "%02X", cur.data[i])
			}
		}
		if cur.next != l.tail {
			w.WriteString(separator)
		}
	}
	w.WriteByte('\n')
	return nil
}

// LoadFromFile reads a list previously written by SaveToFile. config
// supplies the expected element size and the callbacks for the new list.
// Binary files whose stored element size differs from the configured one are
// rejected. In text mode an empty separator means whitespace tokenization;
// a non-empty separator splits the file by that exact substring and only
// primitive element sizes are recoverable.
func LoadFromFile(filename string, config *Configuration, format FileFormat, separator string) (*List, error) {
	if filename == "" || config == nil {
		return nil, ErrNilArgument
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()
	l, err := New(config)
	if err != nil {
		return nil, err
	}
	if format == FormatBinary {
		err = l.readBinary(f)
	} else {
		err = l.readText(f, separator)
	}
	if err != nil {
		l.Destroy()
		return nil, err
	}
	return l, nil
}

func (l *List) readBinary(r io.Reader) error {
	header := make([]byte, 16)
	if _, err := io.ReadFull(r, header); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	count := binary.LittleEndian.Uint64(header[0:8])
	size := binary.LittleEndian.Uint64(header[8:16])
	if int(size) != l.elementSize {
		return fmt.Errorf("stored element size %d does not match expected %d: %w", size, l.elementSize, ErrInvalidOperation)
	}
	buf := make([]byte, l.elementSize)
	for i := uint64(0); i < count; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return fmt.Errorf("read element %d: %w", i, err)
		}
		if err := l.InsertTail(buf); err != nil {
			return err
		}
	}
	return nil
}

func (l *List) readText(r io.Reader, separator string) error {
	if separator == "" {
		return l.readTextTokens(r)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	for _, tok := range strings.Split(string(content), separator) {
		switch l.elementSize {
		case sizeOfInt:
			v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 32)
			if err != nil {
				continue
			}
			if err := l.InsertTail(encodeInt(int(v))); err != nil {
				return err
			}
		case sizeOfDouble:
			v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil {
				continue
			}
			if err := l.InsertTail(encodeDouble(v)); err != nil {
				return err
			}
		case sizeOfChar:
			tok = strings.TrimRight(tok, "\r\n")
			if tok == "" {
				continue
			}
			if err := l.InsertTail([]byte{tok[0]}); err != nil {
				return err
			}
		default:
			// non-primitive sizes are not recoverable with a custom
			// separator; use binary or whitespace hex mode
		}
	}
	return nil
}

// readTextTokens is the default whitespace/newline tokenization.
func (l *List) readTextTokens(r io.Reader) error {
	switch l.elementSize {
	case sizeOfInt:
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			v, err := strconv.ParseInt(sc.Text(), 10, 32)
			if err != nil {
				return sc.Err()
			}
			if err := l.InsertTail(encodeInt(int(v))); err != nil {
				return err
			}
		}
		return sc.Err()
	case sizeOfDouble:
		sc := bufio.NewScanner(r)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			v, err := strconv.ParseFloat(sc.Text(), 64)
			if err != nil {
				return sc.Err()
			}
			if err := l.InsertTail(encodeDouble(v)); err != nil {
				return err
			}
		}
		return sc.Err()
	case sizeOfChar:
		br := bufio.NewReader(r)
		for {
			c, err := br.ReadByte()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			if c == '\n' || c == '\r' {
				continue
			}
			if err := l.InsertTail([]byte{c}); err != nil {
				return err
			}
		}
	default:
		// hex dump mode: one element per line, space-separated bytes
		sc := bufio.NewScanner(r)
		buf := make([]byte, l.elementSize)
		for sc.Scan() {
			fields := strings.Fields(sc.Text())
			if len(fields) < l.elementSize {
				continue
			}
			ok := true
			for i := 0; i < l.elementSize; i++ {
				b, err := strconv.ParseUint(fields[i], 16, 8)
				if err != nil {
					ok = false
					break
				}
				buf[i] = byte(b)
			}
			if !ok {
				continue
			}
			if err := l.InsertTail(buf); err != nil {
				return err
			}
		}
		return sc.Err()
	}
}

func decodeInt(elem []byte) int {
	return int(int32(binary.LittleEndian.Uint32(elem)))
}

func encodeInt(v int) []byte {
	b := make([]byte, sizeOfInt)
	binary.LittleEndian.PutUint32(b, uint32(int32(v)))
	return b
}

func decodeDouble(elem []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(elem))
}

func encodeDouble(v float64) []byte {
	b := make([]byte, sizeOfDouble)
	binary.LittleEndian.PutUint64(b, math.Float64bits(v))
	return b
}
