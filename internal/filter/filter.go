// Package filter narrows a task list down to the tasks that satisfy the board's
// filter record. It never modifies its input.
package filter

import (
	"fmt"
	"strings"
	"sync"
	"time"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/thenoetrevino/flowforge/internal/models"
)

// Evaluator applies filters. Compiled expressions are cached by source text,
// so one Evaluator can be shared by every renderer.
type Evaluator struct {
	mu    sync.Mutex
	cache map[string]*exprvm.Program
	loc   *time.Location
}

// Option configures an Evaluator
type Option func(*Evaluator)

// WithLocation sets the zone calendar due dates are read in (default time.Local)
func WithLocation(loc *time.Location) Option {
	return func(e *Evaluator) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// New creates an Evaluator
func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		cache: make(map[string]*exprvm.Program),
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEvaluator = New()

// Apply filters tasks with a shared default Evaluator
func Apply(tasks []models.Task, f models.Filters, now time.Time) ([]models.Task, error) {
	return defaultEvaluator.Apply(tasks, f, now)
}

// Apply returns the tasks matching every active criterion of f, in input order.
// The result is a new slice; the tasks themselves are not copied.
func (e *Evaluator) Apply(tasks []models.Task, f models.Filters, now time.Time) ([]models.Task, error) {
	var program *exprvm.Program
	if f.Expr != "" {
		p, err := e.Compile(f.Expr)
		if err != nil {
			return nil, err
		}
		program = p
	}

	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		ok, err := e.match(t, f, program, now)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, t)
		}
	}
	return out, nil
}

// Match reports whether a single task passes f
func (e *Evaluator) Match(t models.Task, f models.Filters, now time.Time) (bool, error) {
	var program *exprvm.Program
	if f.Expr != "" {
		p, err := e.Compile(f.Expr)
		if err != nil {
			return false, err
		}
		program = p
	}
	return e.match(t, f, program, now)
}

func (e *Evaluator) match(t models.Task, f models.Filters, program *exprvm.Program, now time.Time) (bool, error) {
	if f.Q != "" && !matchesQuery(t, f.Q) {
		return false, nil
	}
	if f.Priority != "" && f.Priority != t.Priority {
		return false, nil
	}
	if f.Member != "" && f.Member != t.Assignee {
		return false, nil
	}
	if f.Status != "" && f.Status != t.Status {
		return false, nil
	}
	for _, tag := range f.Tags {
		if !t.HasTag(tag) {
			return false, nil
		}
	}
	if f.Due != models.DueAny && !e.matchesDue(t, f.Due, now) {
		return false, nil
	}
	if program != nil {
		result, err := exprlang.Run(program, e.environment(t, now))
		if err != nil {
			return false, fmt.Errorf("%w: task %s: %v", ErrEvaluation, t.ID, err)
		}
		ok, _ := result.(bool)
		return ok, nil
	}
	return true, nil
}

// matchesQuery is a case-insensitive substring match on the title or any tag
func matchesQuery(t models.Task, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(t.Title), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// matchesDue treats a missing or unparseable due date as not matching
func (e *Evaluator) matchesDue(t models.Task, want models.DueFilter, now time.Time) bool {
	due, ok, err := t.Due(e.loc)
	if err != nil || !ok {
		return false
	}
	switch want {
	case models.DueOverdue:
		return due.Before(now)
	case models.DueToday:
		y1, m1, d1 := due.In(e.loc).Date()
		y2, m2, d2 := now.In(e.loc).Date()
		return y1 == y2 && m1 == m2 && d1 == d2
	default:
		return true
	}
}

// Compile compiles a boolean expression over task fields, reusing a cached
// program when the same source was compiled before
func (e *Evaluator) Compile(expression string) (*exprvm.Program, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if program, ok := e.cache[expression]; ok {
		return program, nil
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(map[string]any{}),
		exprlang.AllowUndefinedVariables(),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidExpression, expression, err)
	}
	e.cache[expression] = program
	return program, nil
}

// environment exposes a task to expressions. Free-form fields are reachable
// both through extra and as top-level names that don't clash with typed fields.
func (e *Evaluator) environment(t models.Task, now time.Time) map[string]any {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	env := map[string]any{
		"id":          string(t.ID),
		"title":       t.Title,
		"description": t.Description,
		"status":      string(t.Status),
		"position":    t.Position,
		"createdDate": t.CreatedDate,
		"priority":    string(t.Priority),
		"assignee":    t.Assignee,
		"dueDate":     t.DueDate,
		"tags":        tags,
		"activity":    len(t.ActivityLog),
		"now":         now,
		"overdue":     e.matchesDue(t, models.DueOverdue, now),
		"dueToday":    e.matchesDue(t, models.DueToday, now),
	}
	extra := make(map[string]any, len(t.Extra))
	for k, v := range t.Extra {
		extra[k] = v
		if _, clash := env[k]; !clash {
			env[k] = v
		}
	}
	env["extra"] = extra
	return env
}
