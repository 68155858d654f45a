package picoarg

import "io"

type parseOpt func(p *OptionParser)

// Output directs failure diagnostics to w instead of standard output. Pass
// io.Discard to let the caller do its own reporting.
func Output(w io.Writer) parseOpt {
	return func(p *OptionParser) {
		p.output = w
	}
}
