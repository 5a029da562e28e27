package words

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// StripCounts copies every other whitespace-separated token of r to w, one
// per line. Frequency lists ship as "word count word count ..."; this keeps
// the words and drops the counts. It returns the number of words written.
func StripCounts(r io.Reader, w io.Writer) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	bw := bufio.NewWriter(w)

	n, kept := 0, 0
	for sc.Scan() {
		if n%2 == 0 {
			if _, err := fmt.Fprintln(bw, sc.Text()); err != nil {
				return kept, err
			}
			kept++
		}
		n++
	}
	if err := sc.Err(); err != nil {
		return kept, err
	}
	return kept, bw.Flush()
}

// StripCountsFile runs StripCounts from src into dst, creating dst's
// directory if needed. dst is truncated.
func StripCountsFile(src, dst string) (int, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	if dir := filepath.Dir(dst); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	out, err := os.Create(dst)
	if err != nil {
		return 0, err
	}
	n, err := StripCounts(in, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return n, err
}
