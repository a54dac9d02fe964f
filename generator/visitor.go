// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package generator

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/albertocavalcante/modelgen/internal/directive"
	"github.com/albertocavalcante/modelgen/internal/resolve"
	"github.com/albertocavalcante/modelgen/model"
)

// State is the lifecycle position of a Visitor.
type State int

const (
	StateIdle State = iota
	StateTraversing
	StateFinalizing
	StateRendered
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateTraversing:
		return "traversing"
	case StateFinalizing:
		return "finalizing"
	case StateRendered:
		return "rendered"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Visitor drives one generation: a single traversal of one schema
// document followed by a single render. It owns the registry it builds;
// a Visitor is not reusable and not safe for concurrent use.
type Visitor struct {
	reg      *model.Registry
	state    State
	resolved bool
	log      logrus.FieldLogger
}

// NewVisitor returns an idle visitor with a fresh registry. A nil logger
// discards diagnostics.
func NewVisitor(log logrus.FieldLogger) *Visitor {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Visitor{
		reg: model.NewRegistry(),
		log: log,
	}
}

// State returns the current state.
func (v *Visitor) State() State { return v.state }

// Registry returns the registry built by Traverse.
func (v *Visitor) Registry() *model.Registry { return v.reg }

// Traverse builds the registry from doc in two passes: extraction of
// every definition in document order, then relationship resolution.
func (v *Visitor) Traverse(doc *ast.SchemaDocument) error {
	if v.state != StateIdle {
		return &model.ReuseError{Op: "traverse", State: v.state.String()}
	}
	v.transition(StateTraversing)

	roots := directive.Roots(doc)
	for _, def := range directive.Merge(doc) {
		e, err := directive.Extract(v.reg, def, roots)
		if err != nil {
			return err
		}
		if e == nil {
			v.log.WithField("definition", def.Name).Debug("skipping definition")
			continue
		}
		if err := v.reg.Add(e); err != nil {
			return err
		}
		v.log.WithFields(logrus.Fields{
			"entity": e.Name,
			"kind":   e.Kind,
			"fields": len(e.Fields),
		}).Debug("extracted entity")
	}

	v.transition(StateFinalizing)
	if err := resolve.Resolve(v.reg); err != nil {
		return err
	}
	v.resolved = true
	v.log.WithField("entities", v.reg.Len()).Debug("resolved relationships")
	return nil
}

// Render feeds every entity to em in registry order and returns the
// emitter's document. It may only run once, after a successful Traverse.
func (v *Visitor) Render(em Emitter) (string, error) {
	if v.state != StateFinalizing || !v.resolved {
		return "", &model.ReuseError{Op: "render", State: v.state.String()}
	}
	v.transition(StateRendered)

	for _, e := range v.reg.Entities() {
		if err := em.Accept(e); err != nil {
			return "", err
		}
	}
	out, err := em.Generate()
	if err != nil {
		return "", err
	}
	v.log.WithFields(logrus.Fields{
		"target": em.Metadata().Target,
		"bytes":  len(out),
	}).Debug("rendered")
	return out, nil
}

func (v *Visitor) transition(to State) {
	v.log.WithFields(logrus.Fields{"from": v.state, "to": to}).Debug("visitor state")
	v.state = to
}
