package mocks

import "reserve/infras/otel"

// scope records nothing. Tests that care about tracing assert on returned errors instead.
type scope struct{}

func NewScope() otel.Scope {
	return scope{}
}

func (scope) AddEvent(string) {}
func (scope) End() {}
func (scope) SetAttribute(string, any) {}
func (scope) SetAttributes(map[string]any) {}
func (scope) TraceError(error) {}
func (scope) TraceIfError(*error) {}
