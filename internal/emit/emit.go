// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package emit

import (
	"fmt"
	"io"

	"github.com/alessio/shellescape"

	"github.com/a-happin/zabbrev/internal/expand"
)

// Write prints the zsh fragment for r to w. Callers must check r.Matched
// first: a non-match means nothing should be printed at all (the shell
// leaves the buffer untouched), and Write does not special-case it.
func Write(w io.Writer, r expand.Result) error {
	lbufferPrev := shellescape.Quote(r.Lbuffer[:r.Start])
	lbufferPost := shellescape.Quote(r.Lbuffer[r.End:])
	rbuffer := shellescape.Quote(r.Rbuffer)

	jointAppend := ""
	if r.AppendSpace {
		jointAppend = " "
	}
	jointPrepend := ""
	if r.PrependSpace {
		jointPrepend = " "
	}

	var buf []byte

	if r.Redraw {
		buf = append(buf, "__zabbrev_redraw=1;"...)
	}

	evaluate := ""
	if r.Evaluate {
		buf = append(buf, "set --"...)
		for _, arg := range r.Args[r.ContextSize:] {
			buf = append(buf, ' ')
			buf = append(buf, shellescape.Quote(arg.Text(r.Segment))...)
		}
		buf = append(buf, ';')
		evaluate = "(e)"
	}

	if r.Snippet.Divided {
		snippet1 := shellescape.Quote(r.Snippet.Before)
		snippet2 := shellescape.Quote(r.Snippet.After)
		buf = fmt.Appendf(buf,
			`local snippet1=%s;local snippet2=%s;snippet1="${%ssnippet1}" && snippet2="${%ssnippet2}" && { LBUFFER=%s"%s${(pj: :)${(@f)snippet1}}";RBUFFER="${(pj: :)${(@f)snippet2}}%s"%s%s;__zabbrev_no_space=1;};`+"\n",
			snippet1, snippet2, evaluate, evaluate, lbufferPrev, jointAppend, jointPrepend, lbufferPost, rbuffer,
		)
	} else {
		snippet := shellescape.Quote(r.Snippet.Simple)
		buf = fmt.Appendf(buf,
			`local snippet=%s;snippet="${%ssnippet}" && { LBUFFER=%s"%s${(pj: :)${(@f)snippet}}%s"%s;RBUFFER=%s;};`+"\n",
			snippet, evaluate, lbufferPrev, jointAppend, jointPrepend, lbufferPost, rbuffer,
		)
	}

	_, err := w.Write(buf)
	return err
}
