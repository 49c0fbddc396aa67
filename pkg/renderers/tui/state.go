package tui

import (
	"github.com/goliatone/go-surveyform/pkg/model"
	"github.com/goliatone/go-surveyform/pkg/render"
)

// attempts tracks rejected submissions and the fields the next round must
// prompt for again.
type attempts struct {
	rejected int
	retry    []model.FieldName
	last     []render.FieldError
}

func (a *attempts) reject(errs []render.FieldError) {
	a.rejected++
	a.last = errs
	a.retry = a.retry[:0]
	for _, fe := range errs {
		a.retry = append(a.retry, fe.Field)
	}
}

func (a *attempts) exhausted(limit int) bool {
	return limit > 0 && a.rejected >= limit
}

// fieldQueue is the ordered list of fields still to prompt. Insertions skip
// names already queued or already answered in this round.
type fieldQueue struct {
	items []model.FieldName
	seen  map[model.FieldName]struct{}
}

func newFieldQueue(names []model.FieldName) *fieldQueue {
	q := &fieldQueue{seen: make(map[model.FieldName]struct{}, len(names))}
	for _, name := range names {
		if _, ok := q.seen[name]; ok {
			continue
		}
		q.seen[name] = struct{}{}
		q.items = append(q.items, name)
	}
	return q
}

func (q *fieldQueue) empty() bool {
	return len(q.items) == 0
}

func (q *fieldQueue) pop() model.FieldName {
	name := q.items[0]
	q.items = q.items[1:]
	return name
}

// pushFront queues names ahead of the remaining items, preserving their order.
func (q *fieldQueue) pushFront(names []model.FieldName) {
	front := make([]model.FieldName, 0, len(names))
	for _, name := range names {
		if _, ok := q.seen[name]; ok {
			continue
		}
		q.seen[name] = struct{}{}
		front = append(front, name)
	}
	q.items = append(front, q.items...)
}
