package kml

import (
	"errors"

	kmlerrors "github.com/KimNorgaard/go-kml/errors"
)

// ParseError describes a failure at a position in the input.
type ParseError = kmlerrors.ParseError

// ConversionError describes a node the geometry converter cannot map.
type ConversionError = kmlerrors.ConversionError

// Errors returned by this package. Match them with errors.Is.
var (
	ErrDecoding       = kmlerrors.ErrDecoding
	ErrSyntax         = kmlerrors.ErrSyntax
	ErrMismatchedTag  = kmlerrors.ErrMismatchedTag
	ErrUnexpectedEOF  = kmlerrors.ErrUnexpectedEOF
	ErrNoElements     = kmlerrors.ErrNoElements
	ErrDepthExceeded  = kmlerrors.ErrDepthExceeded
	ErrValue          = kmlerrors.ErrValue
	ErrMissingElement = kmlerrors.ErrMissingElement

	ErrUnsupportedNode = kmlerrors.ErrUnsupportedNode
	ErrMixedDimensions = kmlerrors.ErrMixedDimensions
	ErrEmptyGeometry   = kmlerrors.ErrEmptyGeometry

	// ErrKMZUnsupported is returned for KMZ input when the package was
	// built with the nokmz tag.
	ErrKMZUnsupported = errors.New("kml: KMZ support is not compiled in")
)
