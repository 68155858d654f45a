package picoarg

import (
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// Bytes is a byte quantity popped from a human readable value such as
// 100GB. See https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}

// PopBytes pops the value for key and parses it as a byte quantity. Check
// Has first: an absent key pops the empty string, which does not parse.
func (p *OptionParser) PopBytes(key byte) (Bytes, error) {
	ui64, err := humanize.ParseBytes(p.PopValue(key))
	if err != nil {
		return 0, errors.Wrapf(err, "option %q", key)
	}
	return Bytes(ui64), nil
}

// PopDuration pops the value for key and parses it with time.ParseDuration.
func (p *OptionParser) PopDuration(key byte) (time.Duration, error) {
	d, err := time.ParseDuration(p.PopValue(key))
	if err != nil {
		return 0, errors.Wrapf(err, "option %q", key)
	}
	return d, nil
}

// PopInt pops the value for key and parses it as a base 10 integer.
func (p *OptionParser) PopInt(key byte) (int64, error) {
	i, err := strconv.ParseInt(p.PopValue(key), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "option %q", key)
	}
	return i, nil
}
