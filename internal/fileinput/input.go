package fileinput

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }

// Error attaches a Location to an error.
type Error struct {
	Location
	Err error
}

func (err Error) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.Err) }
func (err Error) Unwrap() error { return err.Err }

// Input implements sequential line reading through a Queue of one or more
// input streams. The location of the last line read is tracked to facilitate
// user feedback.
type Input struct {
	Queue []io.Reader
	Last  Location

	br   *bufio.Reader
	cur  io.Reader
	name string
	line int
}

// ReadLine reads the next line, without its line ending, moving on through the
// queue as each stream is exhausted. Returns io.EOF after the last stream.
func (in *Input) ReadLine() (string, error) {
	for {
		if in.br == nil && !in.nextIn() {
			return "", io.EOF
		}
		s, err := in.br.ReadString('\n')
		if len(s) > 0 || err == nil {
			in.line++
			in.Last = Location{Name: in.name, Line: in.line}
			return strings.TrimRight(s, "\r\n"), nil
		}
		if err != io.EOF {
			return "", err
		}
		in.closeIn()
	}
}

// WrapError attaches the location of the last line read to err.
func (in *Input) WrapError(err error) error {
	if err == nil || in.Last.Name == "" {
		return err
	}
	return Error{in.Last, err}
}

// Close closes any remaining closable streams.
func (in *Input) Close() error {
	in.closeIn()
	var err error
	for _, r := range in.Queue {
		if cl, ok := r.(io.Closer); ok {
			if cerr := cl.Close(); err == nil {
				err = cerr
			}
		}
	}
	in.Queue = nil
	return err
}

// Abandon closes the current stream, so that reading resumes with the next
// one queued.
func (in *Input) Abandon() { in.closeIn() }

func (in *Input) closeIn() {
	if cl, ok := in.cur.(io.Closer); ok {
		cl.Close()
	}
	in.cur, in.br = nil, nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.cur = r
	in.br = bufio.NewReader(r)
	in.name = nameOf(r)
	in.line = 0
	return true
}

// NamedReader gives a name to an io.Reader, as reported in Locations.
func NamedReader(name string, r io.Reader) io.Reader {
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
