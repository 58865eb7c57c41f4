package pipeline

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// readLines calls fn for every line of r. Lines may end in "\n", "\r\n" or
// a lone "\r", and have no length limit. A final line without a terminator
// is still delivered.
func readLines(r io.Reader, fn func(line string)) error {
	br := bufio.NewReaderSize(r, 64*1024)
	for {
		chunk, err := br.ReadString('\n')
		if chunk != "" {
			chunk = strings.TrimSuffix(chunk, "\n")
			chunk = strings.TrimSuffix(chunk, "\r")
			for _, line := range strings.Split(chunk, "\r") {
				fn(line)
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
