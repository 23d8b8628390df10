// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ux

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// DefaultTable returns a table with one header cell per column name
func DefaultTable(w io.Writer, columns ...string) *tablewriter.Table {
	header := make([]any, 0, len(columns))
	for _, c := range columns {
		header = append(header, c)
	}
	table := tablewriter.NewWriter(w)
	table.Header(header...)
	return table
}
