// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record is one parsed FASTA sequence, upper-cased.
type Record struct {
	ID  string
	Seq string
}

// openReader opens path; ".gz" is transparently decompressed and "-" reads
// stdin.
func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, err
		}
		return &gzipReadCloser{gz: gz, f: f}, nil
	}
	return f, nil
}

type gzipReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzipReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }
func (g *gzipReadCloser) Close() error {
	_ = g.gz.Close()
	return g.f.Close()
}

// ReadFile loads every record of a FASTA file.
func ReadFile(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Read(rc)
}

// Read parses FASTA records from r. Sequence lines are concatenated and
// upper-cased; record IDs stop at the first whitespace of the header.
func Read(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)

	var (
		out []Record
		id  string
		buf bytes.Buffer
	)
	flush := func() {
		if id != "" {
			out = append(out, Record{ID: id, Seq: strings.ToUpper(buf.String())})
		}
		buf.Reset()
	}

	for lineNo := 1; ; lineNo++ {
		line, err := br.ReadString('\n')
		eof := err == io.EOF
		if err != nil && !eof {
			return nil, err
		}
		line = strings.TrimRight(line, "\r\n")
		switch {
		case line == "":
		case line[0] == '>':
			fields := strings.Fields(line[1:])
			if len(fields) == 0 {
				return nil, fmt.Errorf("fasta: empty header at line %d", lineNo)
			}
			flush()
			id = fields[0]
		default:
			if id == "" {
				return nil, fmt.Errorf("fasta: sequence line before first header")
			}
			buf.WriteString(line)
		}
		if eof {
			break
		}
	}
	flush()

	if len(out) == 0 {
		return nil, fmt.Errorf("fasta: no records found")
	}
	return out, nil
}
