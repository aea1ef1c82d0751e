// Package logtest provides an in-memory logging.Logger for tests.
package logtest

import (
	"fmt"
	"sync"

	"github.com/hilthontt/playbutton/internal/infrastructure/logging"
)

type Entry struct {
	Level       string
	Category    logging.Category
	SubCategory logging.SubCategory
	Message     string
	Extra       map[logging.ExtraKey]any
}

type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func New() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// ByLevel returns the recorded entries of one level ("info", "error", ...).
func (r *Recorder) ByLevel(level string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) record(level string, cat logging.Category, sub logging.SubCategory, msg string, extra map[logging.ExtraKey]any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Level:       level,
		Category:    cat,
		SubCategory: sub,
		Message:     msg,
		Extra:       extra,
	})
}

func (r *Recorder) Init()       {}
func (r *Recorder) Sync() error { return nil }

func (r *Recorder) Debug(cat logging.Category, sub logging.SubCategory, msg string, extra map[logging.ExtraKey]any) {
	r.record("debug", cat, sub, msg, extra)
}

func (r *Recorder) Debugf(template string, args ...any) {
	r.record("debug", logging.General, "", fmt.Sprintf(template, args...), nil)
}

func (r *Recorder) Info(cat logging.Category, sub logging.SubCategory, msg string, extra map[logging.ExtraKey]any) {
	r.record("info", cat, sub, msg, extra)
}

func (r *Recorder) Infof(template string, args ...any) {
	r.record("info", logging.General, "", fmt.Sprintf(template, args...), nil)
}

func (r *Recorder) Warn(cat logging.Category, sub logging.SubCategory, msg string, extra map[logging.ExtraKey]any) {
	r.record("warn", cat, sub, msg, extra)
}

func (r *Recorder) Warnf(template string, args ...any) {
	r.record("warn", logging.General, "", fmt.Sprintf(template, args...), nil)
}

func (r *Recorder) Error(cat logging.Category, sub logging.SubCategory, msg string, extra map[logging.ExtraKey]any) {
	r.record("error", cat, sub, msg, extra)
}

func (r *Recorder) Errorf(template string, args ...any) {
	r.record("error", logging.General, "", fmt.Sprintf(template, args...), nil)
}

func (r *Recorder) Fatal(cat logging.Category, sub logging.SubCategory, msg string, extra map[logging.ExtraKey]any) {
	r.record("fatal", cat, sub, msg, extra)
}

func (r *Recorder) Fatalf(template string, args ...any) {
	r.record("fatal", logging.General, "", fmt.Sprintf(template, args...), nil)
}

var _ logging.Logger = (*Recorder)(nil)
