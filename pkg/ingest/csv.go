package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dd0wney/cluso-social/pkg/social"
)

// Column order of the delimited person format:
//
//	id,name,age,gender,occupation,friends
//
// The friends column is a quoted list of ids separated by commas,
// semicolons or spaces. An unquoted list spills into extra columns, which
// are read as further friend ids. A first row whose id column reads "id"
// is treated as a header.
const minColumns = 5

var columnNames = []string{"id", "name", "age", "gender", "occupation", "friends"}

// ParseCSV reads person records from r.
func ParseCSV(r io.Reader) ([]social.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	records := make([]social.Record, 0)
	first := true
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &RecordError{Line: parseErr.Line, Cause: errors.Join(ErrMalformedRecord, parseErr.Err)}
			}
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		if first {
			first = false
			if strings.EqualFold(strings.TrimSpace(fields[0]), "id") {
				continue
			}
		}
		if isBlank(fields) {
			continue
		}

		record, err := parseFields(line, fields)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func parseFields(line int, fields []string) (social.Record, error) {
	if len(fields) < minColumns {
		return social.Record{}, malformed(line, "", "expected at least %d columns, got %d", minColumns, len(fields))
	}

	id, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return social.Record{}, malformed(line, columnNames[0], "%q is not an integer", fields[0])
	}
	age, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return social.Record{}, malformed(line, columnNames[2], "%q is not an integer", fields[2])
	}

	friends := make([]int, 0)
	for _, column := range fields[minColumns:] {
		ids, err := parseIntList(column)
		if err != nil {
			return social.Record{}, malformed(line, columnNames[5], "%v", err)
		}
		friends = append(friends, ids...)
	}

	return social.Record{
		ID:         id,
		Name:       strings.TrimSpace(fields[1]),
		Age:        age,
		Gender:     strings.TrimSpace(fields[3]),
		Occupation: strings.TrimSpace(fields[4]),
		Friends:    friends,
	}, nil
}

// parseIntList splits s on commas, semicolons and whitespace.
func parseIntList(s string) ([]int, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})

	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.New("friend id " + strconv.Quote(p) + " is not an integer")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
