// Package engine owns the scan and clean lifecycle. Workers run in
// background goroutines and communicate exclusively through immutable
// Msg values on a channel; all state mutation happens in Apply, called
// by the single goroutine that owns the Engine. The workers never touch
// engine state and the owner never blocks on worker I/O.
package engine

import (
	"fmt"
	"sync"

	"github.com/fenilsonani/macsweep/internal/fsutil"
	"github.com/fenilsonani/macsweep/internal/scanner"
	"github.com/fenilsonani/macsweep/internal/shred"
	"github.com/fenilsonani/macsweep/pkg/utils"
)

// Phase is the engine state machine: Idle -> Scanning -> Idle and
// Idle -> Cleaning -> Idle. Start calls while busy are no-ops.
type Phase int

const (
	Idle Phase = iota
	Scanning
	Cleaning
)

// Msg is a message from a background worker to the owning goroutine.
type Msg interface{ isMsg() }

// Progress updates the current activity label.
type Progress struct{ Label string }

// CategoryScanned delivers one category's finished scan result.
type CategoryScanned struct {
	Name   string
	Result *scanner.ScanResult
}

// ScanDone terminates a scan message stream.
type ScanDone struct{ Smart bool }

// ItemDeleted reports one successful removal.
type ItemDeleted struct {
	Category string
	Path     string
	Freed    int64
}

// ItemFailed reports one failed removal. The batch continues.
type ItemFailed struct {
	Category string
	Path     string
	Reason   string
}

// CleanDone terminates a clean message stream.
type CleanDone struct{ Secure bool }

func (Progress) isMsg()        {}
func (CategoryScanned) isMsg() {}
func (ScanDone) isMsg()        {}
func (ItemDeleted) isMsg()     {}
func (ItemFailed) isMsg()      {}
func (CleanDone) isMsg()       {}

// Item pairs a scan entry with its selection flag, so entries and
// selections can never drift out of alignment.
type Item struct {
	Entry    scanner.ScanEntry
	Selected bool
}

// Category is the engine-side state for one cleaner.
type Category struct {
	Name       string
	Label      string
	Selected   bool
	ReportOnly bool
	Scanned    bool
	Items      []Item
	TotalBytes int64
	Errors     []string
}

// SelectedCount counts selected items.
func (c *Category) SelectedCount() int {
	n := 0
	for _, item := range c.Items {
		if item.Selected {
			n++
		}
	}
	return n
}

// SelectedBytes sums the sizes of selected items.
func (c *Category) SelectedBytes() int64 {
	var total int64
	for _, item := range c.Items {
		if item.Selected {
			total += item.Entry.SizeBytes
		}
	}
	return total
}

// SetAllItems selects or deselects every item.
func (c *Category) SetAllItems(selected bool) {
	for i := range c.Items {
		c.Items[i].Selected = selected
	}
}

// SyncFromItems re-derives the category checkbox from item state.
// Report-only categories never become selected.
func (c *Category) SyncFromItems() {
	if c.ReportOnly {
		return
	}
	for _, item := range c.Items {
		if item.Selected {
			c.Selected = true
			return
		}
	}
	c.Selected = false
}

// recompute replaces TotalBytes with a fresh sum over current items.
func (c *Category) recompute() {
	var total int64
	for _, item := range c.Items {
		total += item.Entry.SizeBytes
	}
	c.TotalBytes = total
}

// DeleteItem is one entry of a delete batch snapshot.
type DeleteItem struct {
	Category  string
	Path      string
	SizeBytes int64
}

// Batch is an immutable snapshot of everything selected for deletion.
// The UI shows TotalBytes and Count to the user and passes the same
// Batch to StartDelete, so what was confirmed is exactly what runs.
type Batch struct {
	Items      []DeleteItem
	TotalBytes int64
	Count      int
	Categories []string
}

// Engine holds all category state. Not safe for concurrent use: one
// goroutine owns it and applies messages.
type Engine struct {
	Categories []*Category

	phase         Phase
	ProgressLabel string
	ProgressTotal int
	ProgressDone  int

	// ConfirmPending is set when a smart-clean scan finishes with
	// something to delete; the owner must show the confirmation.
	ConfirmPending bool

	Warnings     []string
	Report       []string
	CleanedBytes int64

	opts scanner.Options

	// Collaborators, swappable in tests.
	cleaners  func() []scanner.Cleaner
	remove    func(string) (int64, error)
	shredFile func(string, func(string)) (int64, error)
}

// New builds an engine with every category registered. Everything
// except the report-only and judgment-heavy categories starts selected.
func New(opts scanner.Options) *Engine {
	e := &Engine{
		opts:      opts,
		cleaners:  func() []scanner.Cleaner { return scanner.All(opts) },
		remove:    fsutil.SafeRemove,
		shredFile: shred.File,
	}
	for _, c := range scanner.All(opts) {
		name := c.Name()
		e.Categories = append(e.Categories, &Category{
			Name:       name,
			Label:      c.Label(),
			Selected:   name != "large-files" && name != "old-files",
			ReportOnly: scanner.ReportOnly(name),
		})
	}
	return e
}

// Phase returns the current lifecycle phase.
func (e *Engine) Phase() Phase { return e.phase }

// Busy reports whether a scan or clean is in flight.
func (e *Engine) Busy() bool { return e.phase != Idle }

// Find returns the category with the given name.
func (e *Engine) Find(name string) *Category {
	for _, cat := range e.Categories {
		if cat.Name == name {
			return cat
		}
	}
	return nil
}

// StartScan launches one scan goroutine per category and returns the
// message stream. With smart set, only the safe categories scan and
// every other category is force-deselected. Returns ok=false without
// side effects if the engine is not idle.
func (e *Engine) StartScan(smart bool) (<-chan Msg, bool) {
	if e.phase != Idle {
		return nil, false
	}

	e.phase = Scanning
	e.ProgressLabel = "Starting scan..."
	e.ConfirmPending = false
	e.Warnings = nil
	e.CleanedBytes = 0

	for _, cat := range e.Categories {
		cat.Items = nil
		cat.TotalBytes = 0
		cat.Errors = nil
		cat.Scanned = false
		if smart {
			cat.Selected = scanner.IsSafe(cat.Name)
		}
	}

	cleaners := e.cleaners()
	if smart {
		safe := cleaners[:0]
		for _, c := range cleaners {
			if scanner.IsSafe(c.Name()) {
				safe = append(safe, c)
			}
		}
		cleaners = safe
	}
	e.ProgressTotal = len(cleaners)
	e.ProgressDone = 0

	ch := make(chan Msg, 64)
	go func() {
		var wg sync.WaitGroup
		for _, c := range cleaners {
			wg.Add(1)
			go func(c scanner.Cleaner) {
				defer wg.Done()
				ch <- Progress{Label: c.Label()}
				ch <- CategoryScanned{Name: c.Name(), Result: c.Scan()}
			}(c)
		}
		wg.Wait()
		ch <- ScanDone{Smart: smart}
		close(ch)
	}()
	return ch, true
}

// PrepareDelete snapshots every selected item of every selected,
// non-report-only category. This snapshot is the confirmation gate.
func (e *Engine) PrepareDelete() Batch {
	var batch Batch
	for _, cat := range e.Categories {
		if !cat.Selected || cat.ReportOnly {
			continue
		}
		count := 0
		var bytes int64
		for _, item := range cat.Items {
			if !item.Selected {
				continue
			}
			batch.Items = append(batch.Items, DeleteItem{
				Category:  cat.Name,
				Path:      item.Entry.Path,
				SizeBytes: item.Entry.SizeBytes,
			})
			count++
			bytes += item.Entry.SizeBytes
		}
		if count > 0 {
			batch.Categories = append(batch.Categories, fmt.Sprintf(
				"%s (%d items, %s)", cat.Label, count, utils.FormatBytes(bytes)))
		}
		batch.Count += count
		batch.TotalBytes += bytes
	}
	return batch
}

// StartDelete removes a confirmed batch in one background goroutine,
// sequentially since the work is disk bound. With secure set every item
// is shredded instead of unlinked. Returns ok=false if not idle.
func (e *Engine) StartDelete(batch Batch, secure bool) (<-chan Msg, bool) {
	if e.phase != Idle {
		return nil, false
	}

	e.phase = Cleaning
	e.ProgressLabel = "Starting cleanup..."
	e.ConfirmPending = false
	e.CleanedBytes = 0
	e.Report = nil

	remove := e.remove
	shredder := e.shredFile

	ch := make(chan Msg, 64)
	go func() {
		for _, item := range batch.Items {
			var freed int64
			var err error
			if secure {
				freed, err = shredder(item.Path, func(line string) {
					ch <- Progress{Label: line}
				})
			} else {
				ch <- Progress{Label: "Deleting: " + item.Path}
				freed, err = remove(item.Path)
			}
			if err != nil {
				ch <- ItemFailed{Category: item.Category, Path: item.Path, Reason: err.Error()}
				continue
			}
			ch <- ItemDeleted{Category: item.Category, Path: item.Path, Freed: freed}
		}
		ch <- CleanDone{Secure: secure}
		close(ch)
	}()
	return ch, true
}

// Apply folds one message into engine state. Must only be called from
// the owning goroutine.
func (e *Engine) Apply(msg Msg) {
	switch m := msg.(type) {
	case Progress:
		e.ProgressLabel = m.Label

	case CategoryScanned:
		if cat := e.Find(m.Name); cat != nil {
			items := make([]Item, len(m.Result.Entries))
			for i, entry := range m.Result.Entries {
				items[i] = Item{Entry: entry, Selected: true}
			}
			cat.Items = items
			cat.TotalBytes = m.Result.TotalBytes
			cat.Errors = m.Result.Errors
			cat.Scanned = true
		}
		e.ProgressDone++

	case ScanDone:
		e.phase = Idle
		e.ProgressLabel = ""
		if m.Smart {
			e.ConfirmPending = e.hasSelectedItems()
		}

	case ItemDeleted:
		e.CleanedBytes += m.Freed
		e.Report = append(e.Report, fmt.Sprintf("[%s] %s (%s)",
			m.Category, m.Path, utils.FormatBytes(m.Freed)))
		if cat := e.Find(m.Category); cat != nil {
			// Removal is by path identity; indexes shift as the batch
			// progresses.
			for i, item := range cat.Items {
				if item.Entry.Path == m.Path {
					cat.Items = append(cat.Items[:i], cat.Items[i+1:]...)
					break
				}
			}
			cat.recompute()
		}

	case ItemFailed:
		e.Warnings = append(e.Warnings, fmt.Sprintf("Failed to delete %s: %s", m.Path, m.Reason))

	case CleanDone:
		e.phase = Idle
		e.ProgressLabel = ""
	}
}

// Drain applies every message from a finished or in-flight stream until
// the channel closes. Convenience for the synchronous CLI path; the TUI
// applies messages one at a time instead.
func (e *Engine) Drain(ch <-chan Msg, observe func(Msg)) {
	for msg := range ch {
		e.Apply(msg)
		if observe != nil {
			observe(msg)
		}
	}
}

func (e *Engine) hasSelectedItems() bool {
	for _, cat := range e.Categories {
		if cat.Selected && !cat.ReportOnly && cat.SelectedCount() > 0 {
			return true
		}
	}
	return false
}
