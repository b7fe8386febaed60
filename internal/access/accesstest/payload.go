// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package accesstest provides capability-model test doubles shared by the
// interactor test suites.
package accesstest

import (
	"sync"

	"inkpress/internal/access"
)

// PayloadSpy is a Payload with a fixed allow/deny answer that records every
// action it was asked about.
type PayloadSpy struct {
	ID      string
	Allowed bool

	mu     sync.Mutex
	called []access.Action
}

// Allowed returns a payload that grants every action.
func Allowed(id string) *PayloadSpy {
	return &PayloadSpy{ID: id, Allowed: true}
}

// Denied returns a payload that denies every action.
func Denied(id string) *PayloadSpy {
	return &PayloadSpy{ID: id, Allowed: false}
}

func (p *PayloadSpy) Can(action access.Action) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.called = append(p.called, action)
	return p.Allowed
}

func (p *PayloadSpy) UserID() string { return p.ID }

// Called returns the actions checked against this payload, in order.
func (p *PayloadSpy) Called() []access.Action {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]access.Action(nil), p.called...)
}
