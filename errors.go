// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzf

package lzf

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrOutputTooSmall   = errors.New("output buffer too small")
	ErrInvalidData      = errors.New("invalid compressed data")
	ErrInvalidHeader    = errors.New("invalid block header")
	ErrUnknownBlockType = errors.New("unknown block type")
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrWriterClosed     = errors.New("writer is closed")
)
