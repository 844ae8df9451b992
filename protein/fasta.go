package protein

import (
	"bufio"
	"io"
	"strings"
)

type FastaRecord struct {
	Header   string
	Sequence string
}

// ParseFasta reads FASTA records from r. Lines starting with '>' open a
// record; the sequence lines that follow are concatenated.
func ParseFasta(r io.Reader) ([]FastaRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var records []FastaRecord
	var current *FastaRecord
	var seq strings.Builder
	flush := func() {
		if current != nil {
			current.Sequence = strings.ToUpper(seq.String())
			records = append(records, *current)
		}
		seq.Reset()
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			current = &FastaRecord{Header: strings.TrimSpace(line[1:])}
			continue
		}
		// sequence before the first header has no record to belong to
		if current != nil {
			seq.WriteString(line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}
