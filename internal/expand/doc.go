// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package expand computes the replacement plan for one expansion
// invocation: the byte range of the left buffer to overwrite, the
// append/prepend space flags, and the snippet form to splice in. It is the
// last stage that knows anything about absolute buffer offsets — package
// emit only ever sees the resulting Result.
package expand
