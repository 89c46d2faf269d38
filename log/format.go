// Copyright 2017 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	timeFormat        = "2006-01-02T15:04:05-0700"
	termTimeFormat    = "01-02|15:04:05.000"
	termMsgJust       = 40
	termCtxMaxPadding = 40
)

func levelColor(l slog.Level) int {
	switch l {
	case LevelCrit:
		return 35
	case LevelError:
		return 31
	case LevelWarn:
		return 33
	case LevelInfo:
		return 32
	case LevelDebug:
		return 36
	case LevelTrace:
		return 34
	}
	return 0
}

// format renders a record as
//
//	LEVEL [01-02|15:04:05.000] message                                  key=value key=value
func (h *TerminalHandler) format(buf []byte, r slog.Record, usecolor bool) []byte {
	lvl := LevelAlignedString(r.Level)
	if usecolor {
		buf = fmt.Appendf(buf, "\x1b[%dm%s\x1b[0m", levelColor(r.Level), lvl)
	} else {
		buf = append(buf, lvl...)
	}
	buf = append(buf, " ["...)
	buf = r.Time.AppendFormat(buf, termTimeFormat)
	buf = append(buf, "] "...)
	buf = append(buf, r.Message...)

	// pad message so that contexts line up
	if (len(h.attrs) > 0 || r.NumAttrs() > 0) && len(r.Message) < termMsgJust {
		buf = append(buf, strings.Repeat(" ", termMsgJust-len(r.Message))...)
	}

	buf = h.formatAttributes(buf, r, usecolor)
	return append(buf, '\n')
}

func (h *TerminalHandler) formatAttributes(buf []byte, r slog.Record, color bool) []byte {
	writeAttr := func(attr slog.Attr, last bool) {
		buf = append(buf, ' ')
		if color {
			buf = fmt.Appendf(buf, "\x1b[%dm%s\x1b[0m=", levelColor(r.Level), attr.Key)
		} else {
			buf = append(buf, attr.Key...)
			buf = append(buf, '=')
		}
		val := FormatSlogValue(attr.Value)
		buf = append(buf, val...)

		if last {
			return
		}
		// pad to the widest value seen for this key
		length := utf8.RuneCountInString(val)
		padding := h.fieldPadding[attr.Key]
		if padding < length && length <= termCtxMaxPadding {
			padding = length
			h.fieldPadding[attr.Key] = padding
		}
		if padding > length {
			buf = append(buf, strings.Repeat(" ", padding-length)...)
		}
	}

	n := 0
	total := len(h.attrs) + r.NumAttrs()
	for _, attr := range h.attrs {
		n++
		writeAttr(attr, n == total)
	}
	r.Attrs(func(attr slog.Attr) bool {
		n++
		writeAttr(attr, n == total)
		return true
	})
	return buf
}

// FormatSlogValue formats a slog.Value for terminal output.
func FormatSlogValue(v slog.Value) string {
	var value string
	switch v.Kind() {
	case slog.KindString:
		value = v.String()
	case slog.KindInt64:
		value = strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		value = strconv.FormatUint(v.Uint64(), 10)
	case slog.KindTime:
		value = v.Time().Format(timeFormat)
	default:
		attr := replaceAttr(slog.Any("", v.Any()), true)
		if attr.Value.Kind() == slog.KindString {
			value = attr.Value.String()
		} else {
			value = fmt.Sprintf("%+v", attr.Value.Any())
		}
	}
	if needsQuoting(value) {
		return strconv.Quote(value)
	}
	return value
}

func needsQuoting(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' || r >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
