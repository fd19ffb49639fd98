package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/scorecard/schema"
	"gopkg.in/yaml.v3"
)

// ErrMalformedSession is returned for session documents that cannot be decoded.
var ErrMalformedSession = errors.New("malformed session file")

// cityList accepts either a YAML sequence or a comma-separated string.
type cityList []string

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *cityList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*c = schema.SplitCities(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*c = schema.SplitCities(strings.Join(items, ","))
		return nil
	default:
		return fmt.Errorf("line %d: cities must be a list or a comma-separated string", node.Line)
	}
}

// CampaignDocument is the YAML form of the campaign details.
type CampaignDocument struct {
	Name         string   `yaml:"name"`
	CampaignDate string   `yaml:"campaign_date"`
	StartDate    string   `yaml:"start_date"`
	EndDate      string   `yaml:"end_date"`
	ClientName   string   `yaml:"client_name"`
	Country      string   `yaml:"country"`
	Cities       cityList `yaml:"cities"`
	Type         string   `yaml:"campaign_type"`
}

// ScoreDocument is one scored metric in a session file.
type ScoreDocument struct {
	Phase    string `yaml:"phase"`
	Category string `yaml:"category"`
	Metric   string `yaml:"metric"`
	Score    int    `yaml:"score"`
}

// CommentDocument is one metric comment in a session file.
type CommentDocument struct {
	Phase    string `yaml:"phase"`
	Category string `yaml:"category"`
	Metric   string `yaml:"metric"`
	Comment  string `yaml:"comment"`
}

// SessionDocument is the YAML form of a whole session.
type SessionDocument struct {
	Campaign CampaignDocument  `yaml:"campaign"`
	Scores   []ScoreDocument   `yaml:"scores"`
	Comments []CommentDocument `yaml:"comments"`
}

// CampaignInfo converts the document into validated campaign details.
func (d CampaignDocument) CampaignInfo() (schema.CampaignInfo, error) {
	info := schema.CampaignInfo{
		Name:       d.Name,
		ClientName: d.ClientName,
		Country:    d.Country,
		Cities:     []string(d.Cities),
		Type:       schema.CampaignType(d.Type),
	}
	var err error
	if info.CampaignDate, err = schema.ParseDate(d.CampaignDate); err != nil {
		return info, err
	}
	if info.StartDate, err = schema.ParseDate(d.StartDate); err != nil {
		return info, err
	}
	if info.EndDate, err = schema.ParseDate(d.EndDate); err != nil {
		return info, err
	}
	if err := ValidateCampaign(&info); err != nil {
		return info, err
	}
	return info, nil
}

// Apply loads the document into a session.
func (d SessionDocument) Apply(s *Session) error {
	info, err := d.Campaign.CampaignInfo()
	if err != nil {
		return err
	}
	if d.Campaign.Type == "" {
		info.Type = s.Campaign().Type
	}
	if err := s.SetCampaign(info); err != nil {
		return err
	}
	for i, e := range d.Scores {
		key, err := documentKey(e.Phase, e.Category, e.Metric)
		if err != nil {
			return fmt.Errorf("scores[%d]: %w", i, err)
		}
		if err := s.SetScore(key, e.Score); err != nil {
			return fmt.Errorf("scores[%d]: %w", i, err)
		}
	}
	for i, e := range d.Comments {
		key, err := documentKey(e.Phase, e.Category, e.Metric)
		if err != nil {
			return fmt.Errorf("comments[%d]: %w", i, err)
		}
		if err := s.SetComment(key, e.Comment); err != nil {
			return fmt.Errorf("comments[%d]: %w", i, err)
		}
	}
	return nil
}

// SessionToDocument captures the state of a session as a document.
func SessionToDocument(s *Session) SessionDocument {
	info := s.Campaign()
	doc := SessionDocument{
		Campaign: CampaignDocument{
			Name:         info.Name,
			CampaignDate: schema.FormatDate(info.CampaignDate),
			StartDate:    schema.FormatDate(info.StartDate),
			EndDate:      schema.FormatDate(info.EndDate),
			ClientName:   info.ClientName,
			Country:      info.Country,
			Cities:       cityList(info.Cities),
			Type:         string(info.Type),
		},
	}
	for _, e := range s.Scores() {
		doc.Scores = append(doc.Scores, ScoreDocument{
			Phase: string(e.Phase), Category: e.Category, Metric: e.Metric, Score: int(e.Score),
		})
	}
	for _, e := range s.Comments() {
		doc.Comments = append(doc.Comments, CommentDocument{
			Phase: string(e.Phase), Category: e.Category, Metric: e.Metric, Comment: e.Comment,
		})
	}
	return doc
}

func documentKey(phase, category, metric string) (schema.MetricKey, error) {
	p, err := ParsePhase(phase)
	if err != nil {
		return schema.MetricKey{}, err
	}
	return schema.NewMetricKey(p, category, metric), nil
}

// ReadSession decodes a YAML session document into s.
func ReadSession(r io.Reader, s *Session) error {
	var doc SessionDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrMalformedSession, err)
	}
	return doc.Apply(s)
}

// WriteSession encodes the session as a YAML document.
func WriteSession(w io.Writer, s *Session) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(SessionToDocument(s)); err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return enc.Close()
}

// RowsReader reads the raw rows of an exported spreadsheet.
type RowsReader func(path string) ([][]string, error)

// LoadSession fills s from a YAML document, or from a previously exported
// spreadsheet when the path ends in .xlsx and readRows is set.
func LoadSession(path string, s *Session, readRows RowsReader) error {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		if readRows == nil {
			return fmt.Errorf("%w: no spreadsheet reader for %s", ErrMalformedSession, path)
		}
		rows, err := readRows(path)
		if err != nil {
			return err
		}
		rep, err := ParseReport(rows)
		if err != nil {
			return err
		}
		return ApplyReport(s, rep)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open session file: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadSession(f, s)
}
