package ingest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qx-labs/deepcite/internal/model"
)

// fileRecord is the on-disk shape of one source in a sources file. The
// publication date travels as a string so hand-written files can use plain
// "2006-01-02" dates.
type fileRecord struct {
	URL             string                 `yaml:"url"`
	Title           string                 `yaml:"title"`
	Author          string                 `yaml:"author"`
	PublicationDate string                 `yaml:"publication_date"`
	Publisher       string                 `yaml:"publisher"`
	SourceType      string                 `yaml:"source_type"`
	Industry        string                 `yaml:"industry"`
	Keywords        []string               `yaml:"keywords"`
	Metadata        map[string]interface{} `yaml:"metadata"`
}

// LoadFile reads a YAML list of discovered sources. Dates accept
// "2006-01-02" or RFC 3339; unknown source types degrade to "other".
func LoadFile(path string) ([]model.SourceInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sources file: %w", err)
	}

	var records []fileRecord
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse sources file: %w", err)
	}

	inputs := make([]model.SourceInput, 0, len(records))
	for i, rec := range records {
		in := model.SourceInput{
			URL:        rec.URL,
			Title:      rec.Title,
			Author:     rec.Author,
			Publisher:  rec.Publisher,
			SourceType: model.ParseSourceType(rec.SourceType),
			Industry:   rec.Industry,
			Keywords:   rec.Keywords,
			Metadata:   rec.Metadata,
		}
		if rec.SourceType == "" {
			in.SourceType = model.SourceTypeOther
		}
		if rec.PublicationDate != "" {
			date, err := parseDate(rec.PublicationDate)
			if err != nil {
				return nil, fmt.Errorf("source %d (%s): %w", i+1, rec.URL, err)
			}
			in.PublicationDate = &date
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized publication date %q", s)
}
