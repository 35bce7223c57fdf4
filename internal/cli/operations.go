package cli

import (
	"errors"
	"fmt"

	"github.com/chmouel/wikitodo/internal/log"
	"github.com/chmouel/wikitodo/internal/models"
	"github.com/chmouel/wikitodo/internal/wiki"
)

// wikiService is the part of wiki.Service the add operation needs.
type wikiService interface {
	FindFiles(substring string) ([]string, error)
	AppendToFile(path, text string) error
	Rel(path string) string
}

var _ wikiService = (*wiki.Service)(nil)

// Operations report rejected input through the printer and return nil so the
// remaining operations of the run still execute. A non-nil error means a
// file could not be written.

// ToggleTodos flips the checkbox of each numbered TODO, in the given order.
// Numbering refers to the list as loaded, so earlier toggles never shift it.
func ToggleTodos(p *Printer, snap *wiki.Snapshot, numbers []int) error {
	for _, n := range numbers {
		item, err := snap.Item(n)
		if err != nil {
			p.Failure("Invalid TODO number: %d", n)
			continue
		}
		status, err := snap.Toggle(item)
		if err != nil {
			p.Failure("TODO #%d: %v", n, err)
			continue
		}
		log.Debug("toggled todo", "number", n, "todo", item.Key(), "status", status)
		p.Success("TODO #%d updated!", n)
	}
	return flush(snap)
}

// DeleteTodo removes the line of one numbered TODO.
func DeleteTodo(p *Printer, snap *wiki.Snapshot, number int) error {
	item, err := snap.Item(number)
	if err != nil {
		p.Failure("Invalid TODO number: %d", number)
		return nil
	}
	if err := snap.Remove(item); err != nil {
		p.Failure("TODO #%d: %v", number, err)
		return nil
	}
	log.Debug("deleted todo", "number", number, "todo", item.Key())
	if err := flush(snap); err != nil {
		return err
	}
	p.Deleted("TODO #%d deleted!", number)
	return nil
}

// DeleteCompleted removes every TODO that was completed when the wiki was
// loaded. Lines already deleted during the run are skipped and not counted.
func DeleteCompleted(p *Printer, snap *wiki.Snapshot) error {
	count := 0
	for _, item := range snap.Items {
		if !item.Done() {
			continue
		}
		if err := snap.Remove(item); err != nil {
			if errors.Is(err, models.ErrAlreadyDeleted) {
				continue
			}
			return err
		}
		count++
	}
	if err := flush(snap); err != nil {
		return err
	}
	p.Deleted("%d completed TODO(s) deleted!", count)
	return nil
}

// AddTodo appends a new open TODO to the file whose name contains substring.
// When several files match, selectTarget picks one. snap may be nil; when the
// target is one of its files the line goes through the snapshot so later
// rewrites in the same run keep it.
func AddTodo(p *Printer, svc wikiService, snap *wiki.Snapshot, substring, text string, selectTarget TargetSelector) error {
	matches, err := svc.FindFiles(substring)
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		log.Warn("add skipped", "error", fmt.Errorf("%w: %q", models.ErrNoMatch, substring))
		p.Failure("No files found matching substring: %s", substring)
		return nil
	}

	target := matches[0]
	if len(matches) > 1 {
		if selectTarget == nil {
			p.Failure("Invalid choice.")
			return nil
		}
		target, err = selectTarget(matches)
		if err != nil {
			log.Debug("target selection failed", "error", err)
			p.Failure("Invalid choice.")
			return nil
		}
	}

	line := fmt.Sprintf("\n- [ ] %s\n", text)
	if snap != nil && snap.Append(target, line) {
		if err := flush(snap); err != nil {
			return err
		}
	} else if err := svc.AppendToFile(target, line); err != nil {
		return err
	}

	log.Debug("added todo", "file", svc.Rel(target))
	p.Success("New TODO added to %s: %s", svc.Rel(target), text)
	return nil
}

func flush(snap *wiki.Snapshot) error {
	_, err := snap.Flush()
	return err
}
