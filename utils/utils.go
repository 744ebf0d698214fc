// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"fmt"

	"github.com/onsi/ginkgo/v2/formatter"

	"github.com/ava-labs/suimint/consts"
)

// Outputs to stdout.
//
// e.g.,
//
//	Out("{{green}}{{bold}}hi there %q{{/}}", "aa")
//	Out("{{magenta}}{{bold}}hi therea{{/}} {{cyan}}{{underline}}b{{/}}")
//
// ref.
// https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}

// FormatBalance renders an amount of MIST in SUI.
func FormatBalance(bal uint64) string {
	return fmt.Sprintf("%d.%0*d", bal/consts.MistPerSui, consts.NativeDecimals, bal%consts.MistPerSui)
}
