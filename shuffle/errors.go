// Copyright (c) 2026 The VeChainThor developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package shuffle

import "fmt"

// RangeError reports a position outside [0, N).
type RangeError struct {
	Index int
	N     int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("shuffle: index %d out of range [0, %d)", e.Index, e.N)
}

// ParameterError reports an invalid size or batch argument.
type ParameterError struct {
	Name   string
	Value  int
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("shuffle: invalid %s %d: %s", e.Name, e.Value, e.Reason)
}

// CheckSize rejects negative sequence lengths.
func CheckSize(n int) error {
	if n < 0 {
		return &ParameterError{Name: "n", Value: n, Reason: "must not be negative"}
	}
	return nil
}

// CheckIndex rejects indices outside [0, n).
func CheckIndex(index, n int) error {
	if index < 0 || index >= n {
		return &RangeError{Index: index, N: n}
	}
	return nil
}
