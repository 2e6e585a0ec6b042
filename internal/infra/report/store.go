// Package report persists the outcome of a sweep as a YAML document.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/runoshun/freewipe/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Store implements the report ports.
var (
	_ domain.ReportWriter = (*Store)(nil)
	_ domain.ReportReader = (*Store)(nil)
)

// document is the YAML representation of a RunReport.
type document struct {
	StartedAt  time.Time    `yaml:"started_at"`
	FinishedAt time.Time    `yaml:"finished_at"`
	Executable string       `yaml:"executable"`
	Drives     []driveEntry `yaml:"drives"`
	Succeeded  int          `yaml:"succeeded"`
	Failed     int          `yaml:"failed"`
	DryRun     bool         `yaml:"dry_run"`
}

// driveEntry is the YAML representation of a DriveResult.
type driveEntry struct {
	Root     string   `yaml:"root"`
	Kind     string   `yaml:"kind,omitempty"`
	Status   string   `yaml:"status"`
	Command  []string `yaml:"command,omitempty,flow"`
	Duration string   `yaml:"duration"`
	Error    string   `yaml:"error,omitempty"`
}

// Store writes reports to a single file, replacing the previous report.
type Store struct {
	path string
}

// New creates a new Store for the given file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the report file path.
func (s *Store) Path() string {
	return s.path
}

// Write stores the report atomically via a temp file and rename.
func (s *Store) Write(r *domain.RunReport) error {
	content, err := yaml.Marshal(toDocument(r))
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Read loads the last report. It returns os.ErrNotExist if none was written.
func (s *Store) Read() (*domain.RunReport, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return fromDocument(&doc), nil
}

func toDocument(r *domain.RunReport) *document {
	ok, failed := r.Counts()
	doc := &document{
		StartedAt:  r.StartedAt,
		FinishedAt: r.FinishedAt,
		Executable: r.Executable,
		DryRun:     r.DryRun,
		Succeeded:  ok,
		Failed:     failed,
		Drives:     make([]driveEntry, 0, len(r.Drives)),
	}
	for _, d := range r.Drives {
		e := driveEntry{
			Root:     d.Drive.Root,
			Kind:     string(d.Drive.Kind),
			Status:   string(d.Status),
			Duration: d.Duration.Round(time.Millisecond).String(),
		}
		if d.Command != nil {
			e.Command = append([]string{d.Command.Program}, d.Command.Args...)
		}
		if d.Err != nil {
			e.Error = d.Err.Error()
		}
		doc.Drives = append(doc.Drives, e)
	}
	return doc
}

func fromDocument(doc *document) *domain.RunReport {
	r := &domain.RunReport{
		StartedAt:  doc.StartedAt,
		FinishedAt: doc.FinishedAt,
		Executable: doc.Executable,
		DryRun:     doc.DryRun,
		Drives:     make([]domain.DriveResult, 0, len(doc.Drives)),
	}
	for _, e := range doc.Drives {
		res := domain.DriveResult{
			Status: domain.DriveStatus(e.Status),
		}
		if letter, err := domain.ParseDriveLetter(e.Root); err == nil {
			res.Drive = domain.NewDrive(letter)
		} else {
			res.Drive = domain.Drive{Root: e.Root}
		}
		res.Drive.Kind = domain.DriveKind(e.Kind)
		if d, err := time.ParseDuration(e.Duration); err == nil {
			res.Duration = d
		}
		if len(e.Command) > 0 {
			res.Command = &domain.ExecCommand{Program: e.Command[0], Args: e.Command[1:]}
		}
		if e.Error != "" {
			res.Err = reportedError(e.Error)
		}
		r.Drives = append(r.Drives, res)
	}
	return r
}

// reportedError is an error restored from its message in a report.
type reportedError string

func (e reportedError) Error() string { return string(e) }
