// Package errors defines the error values returned by the KML parser, writer
// and geometry converter.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every error produced by this module wraps one of them so
// callers can classify failures with errors.Is.
var (
	// ErrDecoding reports input that is not valid XML text, such as invalid
	// UTF-8 or a broken entity.
	ErrDecoding = errors.New("decoding error")
	// ErrSyntax reports a structural problem in the element tree.
	ErrSyntax = errors.New("syntax error")
	// ErrMismatchedTag reports an end tag that does not close the innermost
	// open element.
	ErrMismatchedTag = fmt.Errorf("%w: mismatched end tag", ErrSyntax)
	// ErrUnexpectedEOF reports input that ended with open elements.
	ErrUnexpectedEOF = fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	// ErrNoElements reports input without a single element.
	ErrNoElements = errors.New("no KML elements found")
	// ErrDepthExceeded reports nesting deeper than the configured limit.
	ErrDepthExceeded = fmt.Errorf("%w: maximum nesting depth exceeded", ErrSyntax)
	// ErrValue reports text or attribute content that cannot be converted
	// into the field it belongs to.
	ErrValue = errors.New("invalid value")
	// ErrMissingElement reports a mandatory child element that is absent.
	ErrMissingElement = fmt.Errorf("%w: missing required element", ErrValue)

	// ErrUnsupportedNode reports a node the geometry converter cannot map.
	ErrUnsupportedNode = errors.New("unsupported node")
	// ErrMixedDimensions reports coordinates mixing 2D and 3D tuples where a
	// uniform layout is required.
	ErrMixedDimensions = errors.New("mixed coordinate dimensions")
	// ErrEmptyGeometry reports a generic geometry without coordinates where
	// the document model needs at least one.
	ErrEmptyGeometry = errors.New("empty geometry")
)

// ParseError represents a single error that occurred during parsing.
// It includes the position of the error and, for value errors, the name of
// the element or attribute whose content was rejected.
type ParseError struct {
	Err     error
	Message string
	Field   string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", e.Field, msg)
	}
	if e.Line > 0 {
		return fmt.Sprintf("kml: parsing error at line %d, column %d: %s", e.Line, e.Column, msg)
	}
	return "kml: parsing error: " + msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConversionError is returned by the geometry converter.
type ConversionError struct {
	Err  error
	Kind string
}

func (e *ConversionError) Error() string {
	if e.Kind == "" {
		return "kml: conversion: " + e.Err.Error()
	}
	return fmt.Sprintf("kml: cannot convert %s: %s", e.Kind, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
